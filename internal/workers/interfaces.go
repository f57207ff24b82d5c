// Package workers runs background jobs taken from the queue.
//
// A [Workers] aggregate runs any number of [Worker] loops until their
// context is cancelled. [JobWorker] is the loop used by the worker binary:
// it dequeues jobs, dispatches them to the [Handler] registered for the
// job kind and records the outcome. [StaleJobReaper] requeues jobs whose
// worker died before finishing them.
package workers

import (
	"context"
	"time"

	"github.com/finbank/finbank-api/internal/queue"
)

// Worker is a long-running loop. Run blocks until ctx is cancelled or the
// worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// Handler executes one attempt of a job. The returned value is stored as
// the job result.
type Handler interface {
	Handle(ctx context.Context, job queue.Job) (any, error)
}

// StaleRequeuer returns jobs that were dequeued but not updated for
// olderThan to the pending list.
type StaleRequeuer interface {
	RequeueStale(ctx context.Context, olderThan time.Duration) (int, error)
}
