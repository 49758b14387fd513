package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "stylebuilder.yaml").
			Build()

		assert.Equal(t, CategoryConfig, err.Category())
		assert.Equal(t, SeverityFatal, err.Severity())
		assert.Equal(t, "invalid configuration", err.Message())

		file, ok := err.Context().GetString("file")
		require.True(t, ok)
		assert.Equal(t, "stylebuilder.yaml", file)
	})

	t.Run("Wrapping keeps the cause", func(t *testing.T) {
		cause := stderrors.New("disk full")
		err := WrapError(cause, CategoryFileSystem, "write report").Build()

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "disk full")
		assert.False(t, err.CanRetry())
	})

	t.Run("WithContext does not mutate the original", func(t *testing.T) {
		base := ParseFailure("bad weight").Build()
		extended := base.WithContext("path", "a.scss")

		_, ok := base.Context().Get("path")
		assert.False(t, ok)
		path, _ := extended.Context().GetString("path")
		assert.Equal(t, "a.scss", path)
	})
}

func TestUnsupportedInputKind(t *testing.T) {
	err := UnsupportedInputKind("styleguide", "Streams not supported").Build()

	assert.True(t, err.IsFatal())
	assert.True(t, IsUnsupportedInput(err))
	assert.False(t, IsParseFailure(err))
	component, ok := err.Context().GetString(ContextComponent)
	require.True(t, ok)
	assert.Equal(t, "styleguide", component)
}

func TestDetectionThroughWrapAndJoin(t *testing.T) {
	streams := UnsupportedInputKind("styleguide", "Streams not supported").Build()
	buffers := UnsupportedInputKind("styleguide", "Only Buffer supported").Build()
	joined := stderrors.Join(streams, buffers)

	assert.True(t, IsUnsupportedInput(joined))
	assert.Equal(t, []string{"Streams not supported", "Only Buffer supported"}, Messages(joined))

	wrapped := WrapError(ParseFailure("invalid UTF-8").Build(), CategoryRuntime, "styleguide run").Build()
	assert.True(t, IsParseFailure(wrapped))
	assert.Equal(t, CategoryRuntime, GetCategory(wrapped))
	assert.Equal(t, CategoryInternal, GetCategory(stderrors.New("plain")))
}

func TestErrorsIsMatchesCategoryAndMessage(t *testing.T) {
	a := UnsupportedInputKind("styleguide", "Only Buffer supported").Build()
	b := UnsupportedInputKind("other", "Only Buffer supported").Build()
	c := UnsupportedInputKind("styleguide", "Streams not supported").Build()

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, c)
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("unknown task").Build(), 2},
		{"unsupported input", UnsupportedInputKind("styleguide", "Streams not supported").Build(), 4},
		{"parse", ParseFailure("bad weight").Build(), 4},
		{"config", ConfigError("bad config").Build(), 7},
		{"sass", SassError("undefined variable").Build(), 11},
		{"watch", WatchError("watcher closed").Build(), 12},
		{"internal", InternalError("oops").Build(), 10},
		{"unclassified", stderrors.New("unknown"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logBuf, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	adapter := NewCLIErrorAdapter(false, logger)
	adapter.out = &out
	code := -1
	adapter.exit = func(c int) { code = c }

	adapter.HandleError(UnsupportedInputKind("styleguide", "Streams not supported").Build())

	assert.Equal(t, 4, code)
	assert.Equal(t, "Error: styleguide: Streams not supported\n", out.String())
	assert.Contains(t, logBuf.String(), "category=unsupported_input")
	assert.Contains(t, logBuf.String(), "component=styleguide")
}

func TestCLIErrorAdapter_FormatInternalHidesDetails(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	loud := NewCLIErrorAdapter(true, nil)
	err := InternalError("nil pointer in renderer").Build()

	assert.Equal(t, "Internal error occurred (use -v for details)", quiet.FormatError(err))
	assert.Equal(t, err.Error(), loud.FormatError(err))
	assert.Equal(t, "Error: boom", quiet.FormatError(stderrors.New("boom")))
}
