package aggregate

import (
	stderrors "errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
	"git.home.luguber.info/inful/stylebuilder/internal/metrics"
	"git.home.luguber.info/inful/stylebuilder/internal/record"
)

// DefaultName tags errors raised by a Transformer unless WithName overrides it.
const DefaultName = "styleguide"

const (
	MsgStreamsNotSupported = "Streams not supported"
	MsgOnlyBufferSupported = "Only Buffer supported"
)

// ErrFinished is returned by Process or Finish once a run has finished.
var ErrFinished = ferrors.InternalError("aggregation run already finished").Build()

// State is the lifecycle position of a Transformer.
type State int

const (
	StateOpen State = iota
	StateFinished
)

func (s State) String() string {
	if s == StateFinished {
		return "finished"
	}
	return "open"
}

// Parser turns decoded text into a document.
type Parser[T any] interface {
	Parse(text string) (T, error)
}

// ParserFunc adapts a plain function to Parser.
type ParserFunc[T any] func(text string) (T, error)

func (f ParserFunc[T]) Parse(text string) (T, error) { return f(text) }

// Transformer accumulates parsed documents for one run.
type Transformer[T any] struct {
	name     string
	runID    string
	parser   Parser[T]
	sink     io.Writer
	renderer Renderer
	legacy   bool
	onFinish func()
	recorder metrics.Recorder
	logger   *slog.Logger

	state State
	docs  []T
}

// New creates an open Transformer writing its report to sink.
func New[T any](parser Parser[T], sink io.Writer, opts ...Option) *Transformer[T] {
	s := settings{
		name:     DefaultName,
		renderer: YAMLRenderer{},
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.runID == "" {
		s.runID = uuid.NewString()
	}
	return &Transformer[T]{
		name:     s.name,
		runID:    s.runID,
		parser:   parser,
		sink:     sink,
		renderer: s.renderer,
		legacy:   s.legacy,
		onFinish: s.onFinish,
		recorder: s.recorder,
		logger:   s.logger.With(logfields.Component(s.name), logfields.RunID(s.runID)),
		docs:     make([]T, 0),
	}
}

// RunID identifies this run in logs.
func (t *Transformer[T]) RunID() string { return t.runID }

// State reports whether the run is still open.
func (t *Transformer[T]) State() State { return t.state }

// Documents returns a copy of everything accumulated so far.
func (t *Transformer[T]) Documents() []T {
	out := make([]T, len(t.docs))
	copy(out, t.docs)
	return out
}

// Process handles one record. A nil return acknowledges the record and asks
// for the next one. Empty records are accepted and ignored; buffered records
// are decoded, parsed and appended; any other kind is a fatal
// UnsupportedInputKind error and leaves the buffer untouched.
func (t *Transformer[T]) Process(rec *record.Record) error {
	if t.state == StateFinished {
		return ErrFinished
	}

	kind := rec.Kind()
	t.recorder.IncRecord(kind.String())
	if rec != nil {
		t.logger.Debug("Processing record", logfields.Path(rec.Path), logfields.Kind(kind.String()))
	}

	switch kind {
	case record.KindEmpty:
		return nil
	case record.KindStream:
		err := t.unsupported(MsgStreamsNotSupported, rec)
		if !t.legacy {
			return err
		}
		// A stream is not a buffer either; report both.
		return stderrors.Join(err, t.unsupported(MsgOnlyBufferSupported, rec))
	case record.KindBuffer:
	default:
		return t.unsupported(MsgOnlyBufferSupported, rec)
	}

	text, err := rec.Text()
	if err != nil {
		return err
	}

	start := time.Now()
	doc, err := t.parser.Parse(text)
	t.recorder.ObserveParseDuration(time.Since(start))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryParse, "parse "+rec.Path).
			Fatal().
			WithContext(ferrors.ContextComponent, t.name).
			WithContext("path", rec.Path).
			Build()
	}

	t.docs = append(t.docs, doc)
	return nil
}

// Finish writes the whole buffer to the sink in a single write, closes the
// run and signals completion. It may be called once.
func (t *Transformer[T]) Finish() error {
	if t.state == StateFinished {
		return ErrFinished
	}
	t.state = StateFinished

	out, err := t.renderer.Render(t.docs)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "render aggregated documents").
			Fatal().
			WithContext(ferrors.ContextComponent, t.name).
			Build()
	}
	if _, err := t.sink.Write(out); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write aggregated documents").
			WithContext(ferrors.ContextComponent, t.name).
			Build()
	}

	t.recorder.SetDocuments(len(t.docs))
	t.logger.Info("Aggregation finished", logfields.Documents(len(t.docs)))
	if t.onFinish != nil {
		t.onFinish()
	}
	return nil
}

func (t *Transformer[T]) unsupported(msg string, rec *record.Record) error {
	b := ferrors.UnsupportedInputKind(t.name, msg)
	if rec != nil {
		b = b.WithContext("path", rec.Path)
	}
	return b.Build()
}
