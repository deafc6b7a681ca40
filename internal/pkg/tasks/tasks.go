// Package tasks runs best-effort follow-up work outside the primary
// transaction boundary. Invoice draft generation and notification fan-out
// are submitted here after a successful commit: their failures are logged
// and never affect the outcome already reported to the caller.
package tasks

import (
	"context"
	"log/slog"
	"time"
)

// Runner executes a task submitted after the primary mutation committed.
// Implementations must never propagate the task's failure to the submitter.
type Runner interface {
	// Submit schedules fn for execution. The name identifies the task in logs.
	Submit(name string, fn func(ctx context.Context) error)
}

// GoRunner executes each task in its own goroutine with a bounded deadline,
// recovering panics and logging failures. Completion is not awaited and no
// ordering is guaranteed relative to the submitter returning.
type GoRunner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewGoRunner creates a runner that bounds each task by the given timeout.
func NewGoRunner(timeout time.Duration, logger *slog.Logger) *GoRunner {
	return &GoRunner{
		timeout: timeout,
		logger:  logger.With("component", "task_runner"),
	}
}

// Submit runs fn detached from the caller. The task gets a fresh context so
// it is not cancelled when the originating request finishes.
func (r *GoRunner) Submit(name string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		defer func() {
			if rec := recover(); rec != nil {
				r.logger.ErrorContext(ctx, "Task panicked", "task", name, "panic", rec)
			}
		}()

		if err := fn(ctx); err != nil {
			r.logger.ErrorContext(ctx, "Task failed", "task", name, "error", err)
		}
	}()
}

// SyncRunner executes tasks inline. It exists for tests and for callers that
// need deterministic completion of follow-up work.
type SyncRunner struct {
	logger *slog.Logger
}

// NewSyncRunner creates a runner that executes each task on the calling goroutine.
func NewSyncRunner(logger *slog.Logger) *SyncRunner {
	return &SyncRunner{logger: logger.With("component", "task_runner")}
}

// Submit executes fn immediately. Failures are logged, matching GoRunner.
func (r *SyncRunner) Submit(name string, fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		r.logger.Error("Task failed", "task", name, "error", err)
	}
}
