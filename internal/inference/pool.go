package inference

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

// Worker serializes inference against one model instance and enforces the
// tier's hard time budget. Independent workers (embedding vs judge) run
// concurrently with each other; calls against the same worker queue on its
// semaphore to respect the model's fixed memory budget.
type Worker struct {
	name    string
	backend Backend
	timeout time.Duration

	sem      *semaphore.Weighted
	loadOnce sync.Once
	loadErr  error
	disabled atomic.Bool
}

// NewWorker wraps a backend with single-flight discipline and a per-call
// timeout.
func NewWorker(name string, backend Backend, timeout time.Duration) *Worker {
	return &Worker{
		name:    name,
		backend: backend,
		timeout: timeout,
		sem:     semaphore.NewWeighted(1),
	}
}

// Available reports whether the worker can still serve calls. False once the
// backend failed to load or the worker was closed.
func (w *Worker) Available() bool {
	return w.backend != nil && !w.disabled.Load()
}

// Do runs fn under the worker's discipline: lazy one-time load, serialized
// access, hard timeout. A load failure disables the worker for the rest of
// the process; it is reported once and never retried per call.
func (w *Worker) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if !w.Available() {
		return ErrUnavailable
	}

	w.loadOnce.Do(func() {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.timeout*4)
		defer cancel()
		w.loadErr = w.backend.Initialize(loadCtx)
		if w.loadErr != nil {
			w.disabled.Store(true)
			slog.Error("inference backend failed to load, disabling tier",
				"backend", w.name, "err", w.loadErr)
		}
	})
	if w.loadErr != nil {
		return ErrUnavailable
	}

	if err := w.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer w.sem.Release(1)

	callCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	err := fn(callCtx)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		slog.Debug("inference call exceeded its budget", "backend", w.name, "budget", w.timeout)
		return ErrTimeout
	}
	return err
}

// Close disables the worker, drains any in-flight inference and shuts the
// backend down. Safe to call on a worker that never loaded.
func (w *Worker) Close(ctx context.Context) error {
	if w.backend == nil {
		return nil
	}
	w.disabled.Store(true)

	// Draining: holding the full semaphore weight guarantees no inference
	// is in flight when Shutdown runs.
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer w.sem.Release(1)

	loaded := false
	w.loadOnce.Do(func() {
		// Never loaded; nothing to shut down, and this marks the once as
		// spent so no later Do can load it.
		w.loadErr = ErrUnavailable
	})
	loaded = w.loadErr == nil

	if !loaded {
		return nil
	}
	return w.backend.Shutdown(ctx)
}
