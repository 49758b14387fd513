package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// Load reads the configuration at path. A missing file yields the defaults.
// Environment files are loaded first so ${VAR} references in the YAML see
// them.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("Config file not found, using defaults", logfields.Path(path))
	case err != nil:
		return nil, ferrors.FileSystemError("failed to read config file").
			WithCause(err).
			WithContext("path", path).
			Build()
	default:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, ferrors.ConfigError("failed to parse config file").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
	}

	applyDefaults(cfg)
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Logging.Level = LogLevel(lvl)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads each existing file without overriding variables that
// are already set.
func loadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return ferrors.ConfigError("failed to load environment file").
				WithCause(err).
				WithContext("path", p).
				Build()
		}
		slog.Debug("Loaded environment file", logfields.Path(p))
	}
	return nil
}
