package workers

import (
	"context"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewJobWorkers builds cfg.Concurrency job workers sharing one consumer.
func NewJobWorkers(consumer queue.Consumer, handlers map[queue.Kind]Handler, cfg config.Workers, log *logger.Logger) *Workers {
	n := max(cfg.Concurrency, 1)
	policy := queue.NewRetryPolicy(cfg)

	ws := make([]Worker, 0, n)
	for i := range n {
		ws = append(ws, NewJobWorker(i+1, consumer, handlers, policy, cfg.PollTimeout, log))
	}
	return NewWorkers(ws...)
}

// With appends ws to the aggregate.
func (w *Workers) With(ws ...Worker) *Workers {
	w.workers = append(w.workers, ws...)
	return w
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first worker error cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
