package config

import (
	"git.home.luguber.info/inful/stylebuilder/internal/foundation/normalization"
)

// OutputStyle is the Sass output style.
type OutputStyle string

const (
	OutputStyleExpanded   OutputStyle = "expanded"
	OutputStyleCompressed OutputStyle = "compressed"
)

var outputStyleNormalizer = normalization.NewNormalizer("styles.output_style", map[string]OutputStyle{
	"expanded":   OutputStyleExpanded,
	"compressed": OutputStyleCompressed,
}, OutputStyleExpanded)

// ReadMode selects how styleguide sources are read.
type ReadMode string

const (
	ReadModeBuffer ReadMode = "buffer"
	ReadModeStream ReadMode = "stream"
	ReadModeNone   ReadMode = "none"
)

var readModeNormalizer = normalization.NewNormalizer("styleguide.read_mode", map[string]ReadMode{
	"buffer": ReadModeBuffer,
	"stream": ReadModeStream,
	"none":   ReadModeNone,
}, ReadModeBuffer)

// ReportFormat selects the aggregated report encoding.
type ReportFormat string

const (
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatJSON ReportFormat = "json"
	ReportFormatText ReportFormat = "text"
)

var reportFormatNormalizer = normalization.NewNormalizer("styleguide.format", map[string]ReportFormat{
	"yaml": ReportFormatYAML,
	"yml":  ReportFormatYAML,
	"json": ReportFormatJSON,
	"text": ReportFormatText,
}, ReportFormatYAML)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer("logging.level", map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// NormalizeLogLevel maps raw onto a LogLevel, falling back to info.
func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer("logging.format", map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

// NormalizeLogFormat maps raw onto a LogFormat, falling back to text.
func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}
