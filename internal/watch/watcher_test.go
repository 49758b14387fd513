package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
)

func TestShouldIgnoreEvent(t *testing.T) {
	for _, name := range []string{".main.scss.swp", "main.scss~", "a.swx", "#main.scss#", "/x/.hidden", "Thumbs.db"} {
		assert.True(t, shouldIgnoreEvent(name), name)
	}
	for _, name := range []string{"main.scss", "_partial.scss", "/src/scss/a.scss"} {
		assert.False(t, shouldIgnoreEvent(name), name)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{}, func(context.Context) error { return nil })
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryValidation, ferrors.GetCategory(err))

	_, err = New(Options{Patterns: []string{filepath.ToSlash(t.TempDir()) + "/missing/*.scss"}}, func(context.Context) error { return nil })
	require.Error(t, err)
	assert.Equal(t, ferrors.CategoryWatch, ferrors.GetCategory(err))
}

func TestMatches(t *testing.T) {
	dir := filepath.ToSlash(t.TempDir())
	w, err := New(Options{Patterns: []string{dir + "/*.scss"}}, func(context.Context) error { return nil })
	require.NoError(t, err)
	defer func() { _ = w.fsw.Close() }()

	assert.True(t, w.Matches(dir+"/main.scss"))
	assert.False(t, w.Matches(dir+"/main.css"))
	assert.False(t, w.Matches(dir+"/nested/main.scss"))
}

func TestRun_TriggersOncePerBurst(t *testing.T) {
	dir := t.TempDir()
	var runs atomic.Int32
	fired := make(chan struct{}, 10)
	w, err := New(Options{
		Patterns: []string{filepath.ToSlash(dir) + "/*.scss"},
		Debounce: 50 * time.Millisecond,
	}, func(context.Context) error {
		runs.Add(1)
		fired <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.scss"), []byte{byte('a' + i)}, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("trigger did not fire")
	}
	// Give a stray second burst a chance to show up.
	time.Sleep(200 * time.Millisecond)
	cancel()
	require.NoError(t, <-result)
	assert.Equal(t, int32(1), runs.Load())
}

func TestRun_RecursivePatternSeesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	fired := make(chan struct{}, 10)
	w, err := New(Options{
		Patterns: []string{filepath.ToSlash(dir) + "/**/*.scss"},
		Debounce: 20 * time.Millisecond,
	}, func(context.Context) error {
		fired <- struct{}{}
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	nested := filepath.Join(dir, "modules", "button")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	// Let the watcher register the new directories before writing into them.
	require.Eventually(t, func() bool {
		for _, p := range w.fsw.WatchList() {
			if p == nested {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(nested, "button.scss"), []byte(".b{}"), 0o644))

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("trigger did not fire for nested file")
	}
}
