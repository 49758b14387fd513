// Package tasks runs named build tasks and their parallel or serial compositions.
package tasks

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	ferrors "git.home.luguber.info/inful/stylebuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/stylebuilder/internal/logfields"
	"git.home.luguber.info/inful/stylebuilder/internal/metrics"
)

// Func is the body of a task.
type Func func(ctx context.Context) error

// Task is a named unit of work.
type Task struct {
	Name        string
	Description string
	Run         Func
}

// Runner is a registry of tasks. It is safe for concurrent use.
type Runner struct {
	mu       sync.RWMutex
	tasks    map[string]Task
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewRunner returns an empty runner.
func NewRunner(recorder metrics.Recorder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		tasks:    map[string]Task{},
		recorder: metrics.OrNoop(recorder),
		logger:   logger,
	}
}

// Register adds or replaces a task.
func (r *Runner) Register(name, description string, fn Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[name] = Task{Name: name, Description: description, Run: fn}
}

// Tasks lists registered tasks sorted by name.
func (r *Runner) Tasks() []Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Runner) lookup(name string) (Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[name]
	if !ok {
		return Task{}, ferrors.ValidationError("task is not defined").WithContext("task", name).Build()
	}
	return t, nil
}

// Run executes the named task, logging its start and finish and recording
// its duration and outcome.
func (r *Runner) Run(ctx context.Context, name string) error {
	t, err := r.lookup(name)
	if err != nil {
		return err
	}
	log := r.logger.With(logfields.Task(name), logfields.RunID(uuid.NewString()))
	log.Info("Starting '" + name + "'...")
	start := time.Now()

	err = t.Run(ctx)
	elapsed := time.Since(start)
	r.recorder.ObserveTaskDuration(name, elapsed)

	switch {
	case err == nil:
		r.recorder.IncTaskResult(name, metrics.ResultSuccess)
		log.Info("Finished '"+name+"' after "+elapsed.Round(time.Millisecond).String(), logfields.Duration(elapsed))
	case errors.Is(err, context.Canceled):
		r.recorder.IncTaskResult(name, metrics.ResultCanceled)
		log.Info("Canceled '"+name+"'", logfields.Duration(elapsed))
	default:
		r.recorder.IncTaskResult(name, metrics.ResultFailed)
		log.Error("'"+name+"' errored after "+elapsed.Round(time.Millisecond).String(), logfields.Error(err))
	}
	return err
}

// Parallel returns a task body running the named tasks concurrently. The
// first failure cancels the others and is returned.
func (r *Runner) Parallel(names ...string) Func {
	return func(ctx context.Context) error {
		for _, n := range names {
			if _, err := r.lookup(n); err != nil {
				return err
			}
		}
		g, gctx := errgroup.WithContext(ctx)
		for _, n := range names {
			g.Go(func() error { return r.Run(gctx, n) })
		}
		return g.Wait()
	}
}

// Series returns a task body running the named tasks one after another,
// stopping at the first failure.
func (r *Runner) Series(names ...string) Func {
	return func(ctx context.Context) error {
		for _, n := range names {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := r.Run(ctx, n); err != nil {
				return err
			}
		}
		return nil
	}
}
