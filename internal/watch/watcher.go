// Package watch re-runs a task whenever files matching a set of globs change.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
	"git.home.luguber.info/inful/stylebuilder/internal/metrics"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 300 * time.Millisecond

// Trigger is the work run after changes settle.
type Trigger func(ctx context.Context) error

// Options configure a Watcher.
type Options struct {
	Patterns []string
	Debounce time.Duration
	Recorder metrics.Recorder
	Logger   *slog.Logger
}

// Watcher watches the directories behind its patterns and calls the trigger
// once per settled burst of matching events. A burst that settles while the
// trigger is running queues a single follow-up run.
type Watcher struct {
	patterns  []string
	recursive []string
	debounce  time.Duration
	trigger   Trigger
	recorder  metrics.Recorder
	logger    *slog.Logger
	fsw       *fsnotify.Watcher
}

// New creates the watcher and registers every directory it needs. Changes
// made after New returns are observed.
func New(opts Options, trigger Trigger) (*Watcher, error) {
	if len(opts.Patterns) == 0 {
		return nil, ferrors.ValidationError("watch requires at least one pattern").Build()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryWatch, "create file watcher").Build()
	}
	w := &Watcher{
		debounce: opts.Debounce,
		trigger:  trigger,
		recorder: metrics.OrNoop(opts.Recorder),
		logger:   opts.Logger,
		fsw:      fsw,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}

	for _, p := range opts.Patterns {
		p = path.Clean(filepath.ToSlash(p))
		if !doublestar.ValidatePattern(p) {
			_ = fsw.Close()
			return nil, ferrors.ValidationError("invalid watch pattern").WithContext("pattern", p).Build()
		}
		w.patterns = append(w.patterns, p)
		base, rel := doublestar.SplitPattern(p)
		if strings.Contains(rel, "**") {
			w.recursive = append(w.recursive, base)
			w.addRecursive(filepath.FromSlash(base))
			continue
		}
		// Dirs matched by a non-recursive pattern's directory part are fixed
		// at start; only the last segment is matched against events.
		dirs := []string{base}
		if dir := path.Dir(rel); dir != "." {
			dirs, _ = doublestar.Glob(os.DirFS(base), dir)
			for i := range dirs {
				dirs[i] = path.Join(base, dirs[i])
			}
		}
		for _, d := range dirs {
			w.add(filepath.FromSlash(d))
		}
	}
	if len(w.fsw.WatchList()) == 0 {
		_ = fsw.Close()
		return nil, ferrors.WatchError("no watchable directories").
			UserAction().
			WithContext("patterns", strings.Join(w.patterns, ",")).
			Build()
	}
	return w, nil
}

func (w *Watcher) add(dir string) {
	if err := w.fsw.Add(dir); err != nil {
		w.logger.Warn("watch add failed", logfields.Path(dir), logfields.Error(err))
	}
}

func (w *Watcher) addRecursive(root string) {
	_ = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			w.add(p)
		}
		return nil
	})
}

// Run processes events until ctx is done. It returns once any in-flight
// trigger has returned.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	requests := make(chan struct{}, 1)
	done := make(chan struct{})
	go w.worker(ctx, requests, done)

	var timer *time.Timer
	schedule := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case requests <- struct{}{}:
			default:
			}
		})
	}

	w.logger.Info("Watching for changes", "patterns", strings.Join(w.patterns, ","))
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			<-done
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				<-done
				return nil
			}
			if w.handle(ev) {
				schedule()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				<-done
				return nil
			}
			w.logger.Warn("watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) worker(ctx context.Context, requests <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-requests:
			w.recorder.IncRebuild()
			w.logger.Info("Change detected; rebuilding")
			if err := w.trigger(ctx); err != nil {
				w.logger.Warn("rebuild failed", logfields.Error(err))
			}
		}
	}
}

// handle registers new directories under recursive roots and reports whether
// ev should schedule a rebuild.
func (w *Watcher) handle(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod || shouldIgnoreEvent(ev.Name) {
		return false
	}
	if ev.Op.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() && w.underRecursive(ev.Name) {
			w.addRecursive(ev.Name)
			return false
		}
	}
	if !w.Matches(ev.Name) {
		return false
	}
	w.logger.Debug("File change detected", logfields.Path(ev.Name), logfields.Op(ev.Op.String()))
	return true
}

func (w *Watcher) underRecursive(name string) bool {
	name = filepath.ToSlash(name)
	for _, root := range w.recursive {
		if root == "." || name == root || strings.HasPrefix(name, root+"/") {
			return true
		}
	}
	return false
}

// Matches reports whether a path is covered by one of the watch patterns.
func (w *Watcher) Matches(name string) bool {
	name = path.Clean(filepath.ToSlash(name))
	for _, p := range w.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// shouldIgnoreEvent returns true for editor temp files and other noise.
func shouldIgnoreEvent(name string) bool {
	base := filepath.Base(name)

	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
