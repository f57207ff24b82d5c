package queue

import (
	"context"
	"errors"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/sethvargo/go-retry"
)

// RetryPolicy bounds how a failing job is rerun: at most MaxRetries reruns
// after the first attempt, with delays growing exponentially from BaseDelay
// and capped at MaxDelay. Every attempt gets its own Timeout.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Timeout    time.Duration
}

// NewRetryPolicy reads the policy from the workers configuration.
func NewRetryPolicy(cfg config.Workers) RetryPolicy {
	return RetryPolicy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.RetryBaseDelay,
		MaxDelay:   cfg.RetryMaxDelay,
		Timeout:    cfg.TaskTimeout,
	}
}

// Delay returns the wait before retry number n (1-based).
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 || p.BaseDelay <= 0 {
		return 0
	}

	d := p.BaseDelay
	for i := 1; i < n; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Nanosecond
	}

	b := retry.NewExponential(base)
	if p.MaxDelay > 0 {
		b = retry.WithCappedDuration(p.MaxDelay, b)
	}

	maxRetries := p.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return retry.WithMaxRetries(uint64(maxRetries), b)
}

// AttemptFunc is one try of a job. attempt starts at 1.
type AttemptFunc func(ctx context.Context, attempt int) error

// RetryHook is called before the job is rerun after a failed attempt.
type RetryHook func(attempt int, err error)

// Run executes fn until it succeeds, returns a [Permanent] error, the retry
// budget runs out or ctx is done. The last error is returned.
func (p RetryPolicy) Run(ctx context.Context, fn AttemptFunc, onRetry RetryHook) error {
	attempt := 0

	return retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		attempt++

		attemptCtx, cancel := p.attemptContext(ctx)
		err := fn(attemptCtx, attempt)
		cancel()

		if err == nil || IsPermanent(err) || ctx.Err() != nil {
			return err
		}

		if attempt <= p.MaxRetries && onRetry != nil {
			onRetry(attempt, err)
		}
		return retry.RetryableError(err)
	})
}

func (p RetryPolicy) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.Timeout)
}

// PermanentError marks a failure that retrying cannot fix.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps err so that [RetryPolicy.Run] stops immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err or anything it wraps is a [PermanentError].
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}
