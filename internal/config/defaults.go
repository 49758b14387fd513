package config

// Defaults follow the conventional src/ + dist/ project layout.
const (
	DefaultEntry      = "src/scss/main.scss"
	DefaultOutputDir  = "dist"
	DefaultDebounce   = "300ms"
	DefaultScratchDir = "tmp"
)

var (
	defaultWatchPatterns     = []string{"src/scss/*.scss"}
	defaultStyleguideSources = []string{"src/modules/**/*.scss"}
)

// Default returns a fully populated, validated configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	_ = cfg.Validate()
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Styles.Entry == "" {
		cfg.Styles.Entry = DefaultEntry
	}
	if cfg.Styles.OutputDir == "" {
		cfg.Styles.OutputDir = DefaultOutputDir
	}
	if cfg.Styles.OutputStyle == "" {
		cfg.Styles.OutputStyle = OutputStyleExpanded
	}
	if len(cfg.Watch.Patterns) == 0 {
		cfg.Watch.Patterns = append([]string(nil), defaultWatchPatterns...)
	}
	if cfg.Watch.Debounce == "" {
		cfg.Watch.Debounce = DefaultDebounce
	}
	if len(cfg.Styleguide.Sources) == 0 {
		cfg.Styleguide.Sources = append([]string(nil), defaultStyleguideSources...)
	}
	if cfg.Styleguide.ReadMode == "" {
		cfg.Styleguide.ReadMode = ReadModeBuffer
	}
	if cfg.Styleguide.Format == "" {
		cfg.Styleguide.Format = ReportFormatYAML
	}
	if cfg.Styleguide.ScratchDir == "" {
		cfg.Styleguide.ScratchDir = DefaultScratchDir
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
}
