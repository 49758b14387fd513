package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/stylebuilder/internal/config"
)

// Global context passed to subcommands.
type Global struct {
	Ctx    context.Context
	Logger *slog.Logger
	Stdout io.Writer
	Stderr io.Writer

	// EnvOptions are applied to every Env a command builds. Tests use it to
	// swap the Sass compiler.
	EnvOptions []EnvOption
}

func (g *Global) context() context.Context {
	if g.Ctx == nil {
		return context.Background()
	}
	return g.Ctx
}

func (g *Global) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Global) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path" default:"stylebuilder.yaml"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text|json); overrides logging.format"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Default    DefaultCmd    `cmd:"" default:"1" help:"Compile stylesheets and watch for changes (css + watch in parallel)"`
	Css        CSSCmd        `cmd:"" name:"css" help:"Compile the Sass entry stylesheet"`
	Watch      WatchCmd      `cmd:"" help:"Watch Sass sources and recompile on change"`
	Styleguide StyleguideCmd `cmd:"" help:"Parse KSS comments from style sources and log the aggregated documents"`
	Init       InitCmd       `cmd:"" help:"Initialize a new configuration file"`
	Tasks      TasksCmd      `cmd:"" help:"List registered tasks"`
}

// AfterApply runs after flag parsing; sets up logging from flags and the
// environment. Config-file logging settings are applied later by loadConfig.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	c.configureLogging(os.Stderr, config.LoggingConfig{})
	return nil
}

// configureLogging installs the default slog logger. Precedence for the
// level: --verbose, then STYLEBUILDER_LOG_LEVEL, then logging.level. For the
// format: --log-format, then logging.format.
func (c *CLI) configureLogging(w io.Writer, fromConfig config.LoggingConfig) *slog.Logger {
	level := config.NormalizeLogLevel(string(fromConfig.Level))
	if env := os.Getenv(config.EnvLogLevel); env != "" {
		level = config.NormalizeLogLevel(env)
	}
	if c.Verbose {
		level = config.LogLevelDebug
	}

	format := config.NormalizeLogFormat(string(fromConfig.Format))
	if c.LogFormat != "" {
		format = config.NormalizeLogFormat(c.LogFormat)
	}

	logger := newLogger(w, level, format)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, level config.LogLevel, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slogLevel(level)}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func slogLevel(l config.LogLevel) slog.Level {
	switch l {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig loads root.Config, applies command-line overrides and
// re-applies logging with the config's settings.
func loadConfig(g *Global, root *CLI, overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if len(overrides) > 0 {
		for _, o := range overrides {
			o(cfg)
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	g.Logger = root.configureLogging(g.stderr(), cfg.Logging)
	return cfg, nil
}

// runTask builds an Env from the config, runs one task and closes the Env.
func runTask(g *Global, root *CLI, name string, overrides ...func(*config.Config)) (err error) {
	cfg, err := loadConfig(g, root, overrides...)
	if err != nil {
		return err
	}
	opts := append([]EnvOption{WithStdout(g.stdout())}, g.EnvOptions...)
	env := NewEnv(cfg, g.Logger, opts...)
	defer func() {
		if cerr := env.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return env.Runner.Run(g.context(), name)
}
