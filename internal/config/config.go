// Package config loads and validates stylebuilder.yaml.
package config

import (
	"time"
)

// DefaultPath is used when no --config flag is given.
const DefaultPath = "stylebuilder.yaml"

// EnvLogLevel overrides logging.level when set.
const EnvLogLevel = "STYLEBUILDER_LOG_LEVEL"

// Config represents the application configuration.
type Config struct {
	Styles     StylesConfig     `yaml:"styles"`
	Watch      WatchConfig      `yaml:"watch"`
	Styleguide StyleguideConfig `yaml:"styleguide"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// StylesConfig drives the css task.
type StylesConfig struct {
	Entry        string      `yaml:"entry"`
	OutputDir    string      `yaml:"output_dir"`
	OutputStyle  OutputStyle `yaml:"output_style"`
	IncludePaths []string    `yaml:"include_paths"`
	SourceMap    bool        `yaml:"source_map"`
	DartSass     string      `yaml:"dart_sass"` // empty means PATH lookup
}

// WatchConfig drives the watch task.
type WatchConfig struct {
	Patterns []string `yaml:"patterns"`
	Debounce string   `yaml:"debounce"`

	debounce time.Duration
}

// DebounceDuration returns the parsed debounce window. Only set after Load
// or Validate.
func (w WatchConfig) DebounceDuration() time.Duration { return w.debounce }

// StyleguideConfig drives the styleguide task.
type StyleguideConfig struct {
	Sources           []string     `yaml:"sources"`
	ReadMode          ReadMode     `yaml:"read_mode"`
	Format            ReportFormat `yaml:"format"`
	Report            string       `yaml:"report"` // empty means stdout
	ScratchDir        string       `yaml:"scratch_dir"`
	LegacyFallthrough bool         `yaml:"legacy_fallthrough"`
}

// LoggingConfig holds logger defaults. CLI flags take precedence.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}
