package tasks

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func newTestRunner() (*Runner, *syncBuffer) {
	out := &syncBuffer{}
	return NewRunner(nil, slog.New(slog.NewTextHandler(out, nil))), out
}

func TestRun_LogsStartAndFinish(t *testing.T) {
	r, logs := newTestRunner()
	r.Register("css", "compile", func(context.Context) error { return nil })

	require.NoError(t, r.Run(context.Background(), "css"))
	assert.Contains(t, logs.String(), "Starting 'css'...")
	assert.Contains(t, logs.String(), "Finished 'css' after")
	assert.Contains(t, logs.String(), "task=css")
}

func TestRun_UnknownTask(t *testing.T) {
	r, _ := newTestRunner()
	err := r.Run(context.Background(), "deploy")
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryValidation, ferrors.GetCategory(err))

	err = r.Parallel("deploy")(context.Background())
	assert.Equal(t, ferrors.CategoryValidation, ferrors.GetCategory(err))
}

func TestSeries_OrderAndStop(t *testing.T) {
	r, _ := newTestRunner()
	var order []string
	boom := errors.New("boom")
	r.Register("a", "", func(context.Context) error { order = append(order, "a"); return nil })
	r.Register("b", "", func(context.Context) error { order = append(order, "b"); return boom })
	r.Register("c", "", func(context.Context) error { order = append(order, "c"); return nil })

	err := r.Series("a", "b", "c")(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestParallel_RunsConcurrently(t *testing.T) {
	r, _ := newTestRunner()
	var wg sync.WaitGroup
	wg.Add(2)
	barrier := func(context.Context) error {
		wg.Done()
		wg.Wait() // both tasks must be running at once to get past here
		return nil
	}
	r.Register("css", "", barrier)
	r.Register("watch", "", barrier)

	done := make(chan error, 1)
	go func() { done <- r.Parallel("css", "watch")(context.Background()) }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("parallel tasks did not run concurrently")
	}
}

func TestParallel_FailureCancelsSiblings(t *testing.T) {
	r, logs := newTestRunner()
	boom := errors.New("compile failed")
	r.Register("css", "", func(context.Context) error { return boom })
	r.Register("watch", "", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := r.Parallel("css", "watch")(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, logs.String(), "Canceled 'watch'")
}

func TestTasksSorted(t *testing.T) {
	r, _ := newTestRunner()
	r.Register("watch", "w", nil)
	r.Register("css", "c", nil)
	tasks := r.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "css", tasks[0].Name)
	assert.Equal(t, "watch", tasks[1].Name)
}
