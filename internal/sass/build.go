package sass

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
	"git.home.luguber.info/inful/stylebuilder/internal/metrics"
)

// Options describe one entry-stylesheet build.
type Options struct {
	Entry        string
	OutputDir    string
	OutputStyle  string
	IncludePaths []string
	SourceMap    bool
	Recorder     metrics.Recorder
}

// Build compiles opts.Entry and writes <OutputDir>/<entry name>.css, plus a
// .css.map next to it when source maps are on. It returns the CSS path.
func Build(ctx context.Context, c Compiler, opts Options) (string, error) {
	rec := metrics.OrNoop(opts.Recorder)
	start := time.Now()

	out, err := build(ctx, c, opts)
	rec.ObserveCompileDuration(time.Since(start), err == nil)
	if err != nil {
		return "", err
	}
	slog.Info("Compiled stylesheet", logfields.Path(opts.Entry), logfields.Output(out), logfields.Duration(time.Since(start)))
	return out, nil
}

func build(ctx context.Context, c Compiler, opts Options) (string, error) {
	src, err := os.ReadFile(opts.Entry)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "read stylesheet entry").
			UserAction().
			WithContext("path", opts.Entry).
			Build()
	}

	abs, err := filepath.Abs(opts.Entry)
	if err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "resolve stylesheet entry").Build()
	}

	style := opts.OutputStyle
	if style == "" {
		style = StyleExpanded
	}
	res, err := c.Compile(ctx, Request{
		Source:       string(src),
		URL:          (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(),
		Syntax:       SyntaxFor(opts.Entry),
		OutputStyle:  style,
		IncludePaths: append([]string{filepath.Dir(abs)}, opts.IncludePaths...),
		SourceMap:    opts.SourceMap,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output directory").
			WithContext("path", opts.OutputDir).
			Build()
	}
	name := strings.TrimSuffix(filepath.Base(opts.Entry), filepath.Ext(opts.Entry)) + ".css"
	out := filepath.Join(opts.OutputDir, name)

	css := res.CSS
	if opts.SourceMap && res.SourceMap != "" {
		css += "\n/*# sourceMappingURL=" + name + ".map */\n"
		if err := writeFile(out+".map", res.SourceMap); err != nil {
			return "", err
		}
	}
	if err := writeFile(out, css); err != nil {
		return "", err
	}
	return out, nil
}

// SyntaxFor picks the source syntax from the file extension.
func SyntaxFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sass":
		return SyntaxSASS
	case ".css":
		return SyntaxCSS
	default:
		return SyntaxSCSS
	}
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write compiled stylesheet").
			WithContext("path", path).
			Build()
	}
	return nil
}
