// Package source resolves glob patterns into an ordered stream of records.
package source

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
	"git.home.luguber.info/inful/stylebuilder/internal/record"
)

// ReadMode selects how file contents are attached to records.
type ReadMode string

const (
	ReadBuffer ReadMode = "buffer" // Contents is the file's bytes
	ReadStream ReadMode = "stream" // Contents is an open *os.File
	ReadNone   ReadMode = "none"   // Contents is nil
)

// File is one match: Path is what records carry, Base is the non-magic prefix
// of the pattern that matched it.
type File struct {
	Path string
	Base string
}

// Glob produces records for every file matching its patterns. Patterns are
// doublestar globs with '/' separators; a leading '!' excludes matches.
type Glob struct {
	include []string
	exclude []string
	mode    ReadMode
	logger  *slog.Logger
}

// NewGlob builds a Glob. An empty mode means ReadBuffer.
func NewGlob(patterns []string, mode ReadMode) *Glob {
	g := &Glob{mode: mode, logger: slog.Default()}
	if g.mode == "" {
		g.mode = ReadBuffer
	}
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if neg, ok := strings.CutPrefix(p, "!"); ok {
			g.exclude = append(g.exclude, path.Clean(neg))
			continue
		}
		g.include = append(g.include, p)
	}
	return g
}

// WithLogger replaces the logger.
func (g *Glob) WithLogger(l *slog.Logger) *Glob {
	if l != nil {
		g.logger = l
	}
	return g
}

// Validate reports the first malformed pattern.
func (g *Glob) Validate() error {
	for _, p := range append(append([]string{}, g.include...), g.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return ferrors.ValidationError("invalid glob pattern").WithContext("pattern", p).Build()
		}
	}
	return nil
}

// Files resolves the patterns. Patterns are expanded in the order given and
// matches within a pattern are sorted lexically; a path matched twice is kept
// at its first position. Directories never match.
func (g *Glob) Files() ([]File, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var files []File
	for _, pattern := range g.include {
		base, rel := doublestar.SplitPattern(pattern)
		matches, err := doublestar.Glob(os.DirFS(base), rel)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "expand glob").
				WithContext("pattern", pattern).
				Build()
		}
		sort.Strings(matches)
		for _, m := range matches {
			p := path.Join(base, m)
			if seen[p] || g.excluded(p) {
				continue
			}
			info, err := os.Stat(filepath.FromSlash(p))
			if err != nil || info.IsDir() {
				continue
			}
			seen[p] = true
			files = append(files, File{Path: filepath.FromSlash(p), Base: filepath.FromSlash(base)})
		}
	}
	return files, nil
}

func (g *Glob) excluded(p string) bool {
	for _, ex := range g.exclude {
		if ok, _ := doublestar.Match(ex, p); ok {
			return true
		}
	}
	return false
}

// Each hands one record per matched file to fn, in path-match order, and
// stops at the first error or cancellation. Streamed contents are closed once
// fn returns.
func (g *Glob) Each(ctx context.Context, fn func(*record.Record) error) error {
	files, err := g.Files()
	if err != nil {
		return err
	}
	g.logger.Debug("Resolved source files", logfields.Records(len(files)))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.emit(f, fn); err != nil {
			return err
		}
	}
	return nil
}

func (g *Glob) emit(f File, fn func(*record.Record) error) error {
	rec := &record.Record{Path: f.Path, Base: f.Base}
	switch g.mode {
	case ReadNone:
	case ReadStream:
		fh, err := os.Open(f.Path)
		if err != nil {
			return readError(err, f.Path)
		}
		defer func() { _ = fh.Close() }()
		rec.Contents = fh
	default:
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return readError(err, f.Path)
		}
		rec.Contents = data
	}
	return fn(rec)
}

func readError(err error, p string) error {
	b := ferrors.WrapError(err, ferrors.CategoryFileSystem, "read source file").WithContext("path", p)
	if os.IsNotExist(err) || os.IsPermission(err) {
		b = b.UserAction()
	}
	return b.Build()
}
