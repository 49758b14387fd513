package config

import (
	"errors"
	"time"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

// Validate normalizes enum fields in place and checks the remaining values.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	style, err := outputStyleNormalizer.NormalizeStrict(string(c.Styles.OutputStyle))
	errs = append(errs, err)
	c.Styles.OutputStyle = style

	mode, err := readModeNormalizer.NormalizeStrict(string(c.Styleguide.ReadMode))
	errs = append(errs, err)
	c.Styleguide.ReadMode = mode

	format, err := reportFormatNormalizer.NormalizeStrict(string(c.Styleguide.Format))
	errs = append(errs, err)
	c.Styleguide.Format = format

	level, err := logLevelNormalizer.NormalizeStrict(string(c.Logging.Level))
	errs = append(errs, err)
	c.Logging.Level = level

	logFormat, err := logFormatNormalizer.NormalizeStrict(string(c.Logging.Format))
	errs = append(errs, err)
	c.Logging.Format = logFormat

	if c.Styles.Entry == "" {
		errs = append(errs, ferrors.ValidationError("styles.entry is required").Build())
	}
	if c.Styles.OutputDir == "" {
		errs = append(errs, ferrors.ValidationError("styles.output_dir is required").Build())
	}
	for _, p := range c.Watch.Patterns {
		if p == "" {
			errs = append(errs, ferrors.ValidationError("watch.patterns contains an empty pattern").Build())
			break
		}
	}

	d, err := time.ParseDuration(c.Watch.Debounce)
	switch {
	case err != nil:
		errs = append(errs, ferrors.ValidationError("invalid watch.debounce").
			WithCause(err).
			WithContext("value", c.Watch.Debounce).
			Build())
	case d < 0:
		errs = append(errs, ferrors.ValidationError("watch.debounce must not be negative").
			WithContext("value", c.Watch.Debounce).
			Build())
	default:
		c.Watch.debounce = d
	}

	return errors.Join(errs...)
}
