// Package sass compiles stylesheets through the dart-sass embedded protocol.
package sass

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bep/godartsass/v2"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

// Output styles accepted by Request.OutputStyle.
const (
	StyleExpanded   = "expanded"
	StyleCompressed = "compressed"
)

// Source syntaxes accepted by Request.Syntax.
const (
	SyntaxSCSS = "scss"
	SyntaxSASS = "sass"
	SyntaxCSS  = "css"
)

// Request is one compilation.
type Request struct {
	Source       string
	URL          string
	Syntax       string
	OutputStyle  string
	IncludePaths []string
	SourceMap    bool
}

// Result is the compiled stylesheet.
type Result struct {
	CSS       string
	SourceMap string
}

// Compiler compiles Sass sources.
type Compiler interface {
	Compile(ctx context.Context, req Request) (Result, error)
	Close() error
}

// DartCompiler runs a dart-sass process in embedded mode. The process is
// started on first use and reused until Close.
type DartCompiler struct {
	binary string
	logger *slog.Logger

	mu         sync.Mutex
	transpiler *godartsass.Transpiler
}

// NewDartCompiler returns a compiler for the given dart-sass binary; an
// empty binary means "sass" from PATH.
func NewDartCompiler(binary string, logger *slog.Logger) *DartCompiler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DartCompiler{binary: binary, logger: logger}
}

func (c *DartCompiler) start() (*godartsass.Transpiler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transpiler != nil && !c.transpiler.IsShutDown() {
		return c.transpiler, nil
	}
	t, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: c.binary,
		LogEventHandler:          c.logEvent,
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategorySass, "start dart-sass").
			Fatal().
			UserAction().
			WithContext("binary", c.binary).
			Build()
	}
	c.transpiler = t
	return t, nil
}

func (c *DartCompiler) logEvent(ev godartsass.LogEvent) {
	switch ev.Type {
	case godartsass.LogEventTypeDebug:
		c.logger.Debug("sass", "message", ev.Message)
	case godartsass.LogEventTypeDeprecated:
		c.logger.Warn("sass deprecation", "message", ev.Message)
	default:
		c.logger.Warn("sass", "message", ev.Message)
	}
}

// Compile implements Compiler.
func (c *DartCompiler) Compile(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	t, err := c.start()
	if err != nil {
		return Result{}, err
	}
	res, err := t.Execute(godartsass.Args{
		Source:          req.Source,
		URL:             req.URL,
		OutputStyle:     godartsass.ParseOutputStyle(req.OutputStyle),
		SourceSyntax:    godartsass.ParseSourceSyntax(req.Syntax),
		IncludePaths:    req.IncludePaths,
		EnableSourceMap: req.SourceMap,
	})
	if err != nil {
		return Result{}, ferrors.WrapError(err, ferrors.CategorySass, "compile stylesheet").
			UserAction().
			WithContext("url", req.URL).
			Build()
	}
	return Result{CSS: res.CSS, SourceMap: res.SourceMap}, nil
}

// Close stops the dart-sass process.
func (c *DartCompiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.transpiler == nil {
		return nil
	}
	err := c.transpiler.Close()
	c.transpiler = nil
	return err
}
