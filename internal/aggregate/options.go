package aggregate

import (
	"log/slog"

	"git.home.luguber.info/inful/stylebuilder/internal/metrics"
)

type settings struct {
	name     string
	runID    string
	renderer Renderer
	legacy   bool
	onFinish func()
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Transformer.
type Option func(*settings)

// WithName sets the component name attached to errors and log lines.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}

// WithRunID overrides the generated run id.
func WithRunID(id string) Option {
	return func(s *settings) { s.runID = id }
}

// WithRenderer selects the report format.
func WithRenderer(r Renderer) Option {
	return func(s *settings) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithLegacyFallthrough makes a stream record report both "Streams not
// supported" and "Only Buffer supported", matching older builds.
func WithLegacyFallthrough() Option {
	return func(s *settings) { s.legacy = true }
}

// WithCompletion registers the callback fired by a successful Finish.
func WithCompletion(fn func()) Option {
	return func(s *settings) { s.onFinish = fn }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(s *settings) { s.recorder = metrics.OrNoop(r) }
}

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
