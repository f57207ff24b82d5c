package queue

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/queue_mock.go -package=mock

// Queue submits jobs and reports their state.
type Queue interface {
	// Enqueue stores a new pending job and makes it available to workers.
	Enqueue(ctx context.Context, kind Kind, owner string, payload any) (Job, error)
	// Get returns the current state of a job.
	Get(ctx context.Context, id string) (Job, error)
}

// Consumer is the worker side of the queue.
type Consumer interface {
	// Dequeue blocks up to timeout for the next pending job.
	Dequeue(ctx context.Context, timeout time.Duration) (Job, error)
	MarkStarted(ctx context.Context, id string, attempt int) error
	MarkRetrying(ctx context.Context, id string, attempt int, reason string) error
	Complete(ctx context.Context, id string, result any) error
	Fail(ctx context.Context, id string, reason string) error
}

// IDGenerator produces job ids.
type IDGenerator interface {
	Generate() string
}
