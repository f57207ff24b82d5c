package workers

import (
	"context"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
)

const minStaleJobAge = time.Minute

// StaleJobReaper periodically returns jobs held by a dead worker to the
// pending list.
type StaleJobReaper struct {
	requeuer   StaleRequeuer
	staleAfter time.Duration
	interval   time.Duration

	logger *logger.Logger
}

// NewStaleJobReaper derives the stale age from cfg. A live worker touches a
// job at least once per attempt timeout plus backoff delay, so a job left
// alone for twice that long has lost its worker.
func NewStaleJobReaper(requeuer StaleRequeuer, cfg config.Workers, log *logger.Logger) *StaleJobReaper {
	staleAfter := max(2*(cfg.TaskTimeout+cfg.RetryMaxDelay), minStaleJobAge)
	return &StaleJobReaper{
		requeuer:   requeuer,
		staleAfter: staleAfter,
		interval:   staleAfter / 2,
		logger:     log,
	}
}

// Run sweeps once immediately and then every interval until ctx is
// cancelled. Sweep errors are logged and never stop the loop.
func (r *StaleJobReaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.sweep(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (r *StaleJobReaper) sweep(ctx context.Context) {
	n, err := r.requeuer.RequeueStale(r.logger.WithContext(ctx), r.staleAfter)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Err(err).Str("func", "*StaleJobReaper.sweep").Msg("error requeueing stale jobs")
		}
		return
	}
	if n > 0 {
		r.logger.Warn().Str("func", "*StaleJobReaper.sweep").Int("requeued", n).Dur("stale_after", r.staleAfter).Msg("stale jobs requeued")
	}
}
