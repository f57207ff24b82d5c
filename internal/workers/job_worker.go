package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/queue"
)

const dequeueErrorDelay = time.Second

// JobWorker processes jobs one at a time.
type JobWorker struct {
	id       int
	consumer queue.Consumer
	handlers map[queue.Kind]Handler
	policy   queue.RetryPolicy

	pollTimeout time.Duration

	logger *logger.Logger
}

func NewJobWorker(id int, consumer queue.Consumer, handlers map[queue.Kind]Handler, policy queue.RetryPolicy, pollTimeout time.Duration, log *logger.Logger) *JobWorker {
	return &JobWorker{
		id:          id,
		consumer:    consumer,
		handlers:    handlers,
		policy:      policy,
		pollTimeout: pollTimeout,
		logger:      log,
	}
}

// Run polls for jobs until ctx is cancelled. Dequeue failures are logged
// and retried after a short pause; they never stop the worker.
func (w *JobWorker) Run(ctx context.Context) error {
	w.logger.Info().Int(logger.FieldWorker, w.id).Msg("worker started")
	defer w.logger.Info().Int(logger.FieldWorker, w.id).Msg("worker stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		job, err := w.consumer.Dequeue(ctx, w.pollTimeout)
		switch {
		case err == nil:
			w.process(ctx, job)
		case errors.Is(err, queue.ErrNoJob):
		case ctx.Err() != nil:
			return nil
		default:
			w.logger.Err(err).Int(logger.FieldWorker, w.id).Msg("error dequeueing job")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(dequeueErrorDelay):
			}
		}
	}
}

// process runs job under the retry policy and records its final status.
// The status is written even when ctx was cancelled mid-job.
func (w *JobWorker) process(ctx context.Context, job queue.Job) {
	log := w.logger.WithJob(w.id, job.ID, string(job.Kind))
	ctx = log.WithContext(ctx)
	statusCtx := context.WithoutCancel(ctx)

	handler, ok := w.handlers[job.Kind]
	if !ok {
		log.Error().Msg("no handler registered for job kind")
		w.fail(statusCtx, log, job, fmt.Sprintf("no handler for job kind %q", job.Kind))
		return
	}

	var result any
	err := w.policy.Run(ctx, func(ctx context.Context, attempt int) error {
		if attempt == 1 {
			if err := w.consumer.MarkStarted(statusCtx, job.ID, attempt); err != nil {
				log.Err(err).Msg("error marking job started")
			}
		}

		var err error
		result, err = handler.Handle(ctx, job)
		return err
	}, func(attempt int, err error) {
		log.Warn().Err(err).
			Int("attempt", attempt).
			Int("max_retries", w.policy.MaxRetries).
			Dur("delay", w.policy.Delay(attempt)).
			Msg("job attempt failed, retrying")
		if merr := w.consumer.MarkRetrying(statusCtx, job.ID, attempt+1, err.Error()); merr != nil {
			log.Err(merr).Msg("error marking job retrying")
		}
	})
	if err != nil {
		log.Err(err).Bool("permanent", queue.IsPermanent(err)).Msg("job failed")
		w.fail(statusCtx, log, job, err.Error())
		return
	}

	if err = w.consumer.Complete(statusCtx, job.ID, result); err != nil {
		log.Err(err).Msg("error storing job result")
		return
	}
	log.Info().Msg("job completed")
}

func (w *JobWorker) fail(ctx context.Context, log *logger.Logger, job queue.Job, reason string) {
	if err := w.consumer.Fail(ctx, job.ID, reason); err != nil {
		log.Err(err).Msg("error marking job failed")
	}
}
