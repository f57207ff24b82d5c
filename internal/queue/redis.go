package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "finbank:"
	pendingKey    = keyPrefix + "jobs:pending"
	processingKey = keyPrefix + "jobs:processing"

	// unfinishedJobTTL bounds how long a record that never reaches a final
	// state stays pollable. Every status update renews it.
	unfinishedJobTTL = 24 * time.Hour

	fieldKind      = "kind"
	fieldOwner     = "owner"
	fieldStatus    = "status"
	fieldAttempts  = "attempts"
	fieldPayload   = "payload"
	fieldResult    = "result"
	fieldError     = "error"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
)

func jobKey(id string) string {
	return keyPrefix + "job:" + id
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// RedisQueue implements [Queue] and [Consumer] on top of two Redis lists and
// per-job hashes. Dequeued ids sit in the processing list until the job is
// completed or failed, so a job held by a crashed worker can be requeued
// with [RedisQueue.RequeueStale].
type RedisQueue struct {
	client    *redis.Client
	ids       IDGenerator
	resultTTL time.Duration
	now       func() time.Time
}

// NewRedisQueue builds a queue whose finished jobs expire after resultTTL.
func NewRedisQueue(client *redis.Client, ids IDGenerator, resultTTL time.Duration) *RedisQueue {
	return &RedisQueue{
		client:    client,
		ids:       ids,
		resultTTL: resultTTL,
		now:       time.Now,
	}
}

// Enqueue writes the job hash and pushes its id in one MULTI/EXEC so a worker
// never pops an id whose hash is missing.
func (q *RedisQueue) Enqueue(ctx context.Context, kind Kind, owner string, payload any) (Job, error) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(payload)
	if err != nil {
		return Job{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	now := q.now().UTC()
	job := Job{
		ID:        q.ids.Generate(),
		Kind:      kind,
		Owner:     owner,
		Status:    StatusPending,
		Payload:   data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, jobKey(job.ID), map[string]any{
			fieldKind:      string(job.Kind),
			fieldOwner:     job.Owner,
			fieldStatus:    string(job.Status),
			fieldAttempts:  0,
			fieldPayload:   string(job.Payload),
			fieldCreatedAt: formatTime(now),
			fieldUpdatedAt: formatTime(now),
		})
		pipe.Expire(ctx, jobKey(job.ID), unfinishedJobTTL)
		pipe.LPush(ctx, pendingKey, job.ID)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*RedisQueue.Enqueue").Str("kind", string(kind)).Msg("error enqueueing job")
		return Job{}, fmt.Errorf("%w: %w", ErrRedis, err)
	}

	log.Debug().Str("func", "*RedisQueue.Enqueue").Str("job_id", job.ID).Str("kind", string(kind)).Msg("job enqueued")
	return job, nil
}

// Get loads the job record. Expired or unknown ids yield [ErrJobNotFound].
func (q *RedisQueue) Get(ctx context.Context, id string) (Job, error) {
	fields, err := q.client.HGetAll(ctx, jobKey(id)).Result()
	if err != nil {
		return Job{}, fmt.Errorf("%w: %w", ErrRedis, err)
	}
	if len(fields) == 0 {
		return Job{}, ErrJobNotFound
	}

	return decodeJob(id, fields)
}

// Dequeue moves the oldest pending job id to the processing list and returns
// the job. Ids whose record already expired are dropped.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (Job, error) {
	for {
		id, err := q.client.BLMove(ctx, pendingKey, processingKey, "RIGHT", "LEFT", timeout).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return Job{}, ErrNoJob
			}
			if ctx.Err() != nil {
				return Job{}, ctx.Err()
			}
			return Job{}, fmt.Errorf("%w: %w", ErrRedis, err)
		}

		job, err := q.Get(ctx, id)
		if errors.Is(err, ErrJobNotFound) {
			logger.FromContext(ctx).Warn().Str("job_id", id).Msg("dequeued job has no record, skipping")
			q.client.LRem(ctx, processingKey, 1, id)
			continue
		}
		return job, err
	}
}

// RequeueStale moves jobs whose record was not updated for olderThan from
// the processing list back to the pending list and returns how many were
// moved. Entries without a record or already finished are dropped.
func (q *RedisQueue) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := q.client.LRange(ctx, processingKey, 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRedis, err)
	}

	cutoff := q.now().UTC().Add(-olderThan)
	requeued := 0
	for _, id := range ids {
		job, err := q.Get(ctx, id)
		switch {
		case errors.Is(err, ErrJobNotFound):
			q.client.LRem(ctx, processingKey, 1, id)
			continue
		case err != nil:
			return requeued, err
		case job.Status.IsFinished():
			q.client.LRem(ctx, processingKey, 1, id)
			continue
		case job.UpdatedAt.After(cutoff):
			continue
		}

		// only the caller that removed the id pushes it back
		removed, err := q.client.LRem(ctx, processingKey, 1, id).Result()
		if err != nil {
			return requeued, fmt.Errorf("%w: %w", ErrRedis, err)
		}
		if removed == 0 {
			continue
		}
		if err = q.client.RPush(ctx, pendingKey, id).Err(); err != nil {
			return requeued, fmt.Errorf("%w: %w", ErrRedis, err)
		}

		log.Warn().Str("func", "*RedisQueue.RequeueStale").Str("job_id", id).Time("updated_at", job.UpdatedAt).Msg("stale job requeued")
		requeued++
	}

	return requeued, nil
}

func (q *RedisQueue) MarkStarted(ctx context.Context, id string, attempt int) error {
	return q.update(ctx, id, false, map[string]any{
		fieldStatus:   string(StatusStarted),
		fieldAttempts: attempt,
	})
}

func (q *RedisQueue) MarkRetrying(ctx context.Context, id string, attempt int, reason string) error {
	return q.update(ctx, id, false, map[string]any{
		fieldStatus:   string(StatusRetrying),
		fieldAttempts: attempt,
		fieldError:    reason,
	})
}

// Complete stores result and starts the record's expiry countdown.
func (q *RedisQueue) Complete(ctx context.Context, id string, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	return q.update(ctx, id, true, map[string]any{
		fieldStatus: string(StatusSuccess),
		fieldResult: string(data),
		fieldError:  "",
	})
}

// Fail records reason and starts the record's expiry countdown.
func (q *RedisQueue) Fail(ctx context.Context, id string, reason string) error {
	return q.update(ctx, id, true, map[string]any{
		fieldStatus: string(StatusFailure),
		fieldError:  reason,
	})
}

func (q *RedisQueue) update(ctx context.Context, id string, finished bool, fields map[string]any) error {
	key := jobKey(id)

	exists, err := q.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRedis, err)
	}
	if exists == 0 {
		return ErrJobNotFound
	}

	fields[fieldUpdatedAt] = formatTime(q.now().UTC())

	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		switch {
		case !finished:
			pipe.Expire(ctx, key, unfinishedJobTTL)
		case q.resultTTL > 0:
			pipe.Expire(ctx, key, q.resultTTL)
		default:
			pipe.Persist(ctx, key)
		}
		if finished {
			pipe.LRem(ctx, processingKey, 1, id)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisQueue.update").Str("job_id", id).Msg("error updating job")
		return fmt.Errorf("%w: %w", ErrRedis, err)
	}

	return nil
}

func decodeJob(id string, fields map[string]string) (Job, error) {
	job := Job{
		ID:     id,
		Kind:   Kind(fields[fieldKind]),
		Owner:  fields[fieldOwner],
		Status: Status(fields[fieldStatus]),
		Error:  fields[fieldError],
	}

	if v := fields[fieldAttempts]; v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return Job{}, fmt.Errorf("%w: attempts: %w", ErrDecodingJob, err)
		}
		job.Attempts = attempts
	}
	if v := fields[fieldPayload]; v != "" {
		job.Payload = json.RawMessage(v)
	}
	if v := fields[fieldResult]; v != "" {
		job.Result = json.RawMessage(v)
	}

	var err error
	if job.CreatedAt, err = parseTime(fields[fieldCreatedAt]); err != nil {
		return Job{}, fmt.Errorf("%w: created_at: %w", ErrDecodingJob, err)
	}
	if job.UpdatedAt, err = parseTime(fields[fieldUpdatedAt]); err != nil {
		return Job{}, fmt.Errorf("%w: updated_at: %w", ErrDecodingJob, err)
	}

	return job, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, v)
}
