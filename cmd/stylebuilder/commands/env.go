package commands

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/stylebuilder/internal/aggregate"
	"git.home.luguber.info/inful/stylebuilder/internal/config"
	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/kss"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
	"git.home.luguber.info/inful/stylebuilder/internal/metrics"
	"git.home.luguber.info/inful/stylebuilder/internal/sass"
	"git.home.luguber.info/inful/stylebuilder/internal/source"
	"git.home.luguber.info/inful/stylebuilder/internal/tasks"
	"git.home.luguber.info/inful/stylebuilder/internal/watch"
)

// Task names.
const (
	TaskCSS        = "css"
	TaskWatch      = "watch"
	TaskStyleguide = "styleguide"
	TaskDefault    = "default"
)

// Env is the wired set of tasks for one invocation.
type Env struct {
	Config   *config.Config
	Runner   *tasks.Runner
	Registry *prom.Registry

	recorder metrics.Recorder
	compiler sass.Compiler
	stdout   io.Writer
	logger   *slog.Logger
}

// EnvOption customizes NewEnv.
type EnvOption func(*Env)

// WithCompiler replaces the dart-sass compiler.
func WithCompiler(c sass.Compiler) EnvOption {
	return func(e *Env) { e.compiler = c }
}

// WithStdout redirects styleguide reports that have no report file.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) { e.stdout = w }
}

// NewEnv builds the metrics registry, the compiler and the task runner.
func NewEnv(cfg *config.Config, logger *slog.Logger, opts ...EnvOption) *Env {
	if logger == nil {
		logger = slog.Default()
	}
	reg := prom.NewRegistry()
	e := &Env{
		Config:   cfg,
		Registry: reg,
		recorder: metrics.NewPrometheusRecorder(reg),
		stdout:   os.Stdout,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.compiler == nil {
		e.compiler = sass.NewDartCompiler(cfg.Styles.DartSass, logger)
	}

	r := tasks.NewRunner(e.recorder, logger)
	r.Register(TaskCSS, "Compile "+cfg.Styles.Entry+" into "+cfg.Styles.OutputDir, e.css)
	r.Register(TaskWatch, "Recompile on changes to the watched Sass sources", e.watch)
	r.Register(TaskStyleguide, "Aggregate KSS documentation from style sources", e.styleguide)
	r.Register(TaskDefault, "Run css and watch in parallel", r.Parallel(TaskCSS, TaskWatch))
	e.Runner = r
	return e
}

// Close stops the compiler and writes the metrics textfile when configured.
func (e *Env) Close() error {
	var errs []error
	if err := e.compiler.Close(); err != nil {
		errs = append(errs, ferrors.WrapError(err, ferrors.CategorySass, "stop sass compiler").Build())
	}
	if path := e.Config.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path, e.Registry); err != nil {
			errs = append(errs, err)
		} else {
			e.logger.Debug("Wrote metrics textfile", logfields.Path(path))
		}
	}
	return errors.Join(errs...)
}

func (e *Env) css(ctx context.Context) error {
	s := e.Config.Styles
	_, err := sass.Build(ctx, e.compiler, sass.Options{
		Entry:        s.Entry,
		OutputDir:    s.OutputDir,
		OutputStyle:  string(s.OutputStyle),
		IncludePaths: s.IncludePaths,
		SourceMap:    s.SourceMap,
		Recorder:     e.recorder,
	})
	return err
}

func (e *Env) watch(ctx context.Context) error {
	w, err := watch.New(watch.Options{
		Patterns: e.Config.Watch.Patterns,
		Debounce: e.Config.Watch.DebounceDuration(),
		Recorder: e.recorder,
		Logger:   e.logger,
	}, func(ctx context.Context) error {
		return e.Runner.Run(ctx, TaskCSS)
	})
	if err != nil {
		return err
	}
	return w.Run(ctx)
}

func (e *Env) styleguide(ctx context.Context) (err error) {
	sg := e.Config.Styleguide

	renderer, err := aggregate.RendererFor(string(sg.Format))
	if err != nil {
		return err
	}
	src := source.NewGlob(sg.Sources, source.ReadMode(sg.ReadMode)).WithLogger(e.logger)
	if err := src.Validate(); err != nil {
		return err
	}

	sink, closeSink, err := e.reportSink(sg.Report)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeSink(); cerr != nil && err == nil {
			err = ferrors.WrapError(cerr, ferrors.CategoryFileSystem, "close styleguide report").
				WithContext("path", sg.Report).
				Build()
		}
	}()

	opts := []aggregate.Option{
		aggregate.WithRenderer(renderer),
		aggregate.WithRecorder(e.recorder),
		aggregate.WithLogger(e.logger),
	}
	if sg.LegacyFallthrough {
		opts = append(opts, aggregate.WithLegacyFallthrough())
	}
	t := aggregate.New[*kss.Styleguide](kss.Parser{}, sink, opts...)
	if err := aggregate.Run(ctx, src, t); err != nil {
		return err
	}

	// The transformer re-emits nothing, so the scratch directory only has to
	// exist.
	if err := os.MkdirAll(sg.ScratchDir, 0o755); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create scratch directory").
			WithContext("path", sg.ScratchDir).
			Build()
	}
	return nil
}

func (e *Env) reportSink(path string) (io.Writer, func() error, error) {
	if path == "" {
		return e.stdout, func() error { return nil }, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "create report directory").
				WithContext("path", dir).
				Build()
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "create styleguide report").
			WithContext("path", path).
			Build()
	}
	return f, f.Close, nil
}
