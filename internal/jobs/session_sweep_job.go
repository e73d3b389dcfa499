package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionSweeper drops checkout sessions whose last activity predates a
// cutoff. Implemented by the in-memory session store.
type SessionSweeper interface {
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// SessionSweepJob manages the scheduled eviction of checkout sessions
// abandoned mid-protocol. Runs every five minutes; carts survive the sweep
// so the customer can restart the checkout later.
type SessionSweepJob struct {
	sweeper SessionSweeper
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSessionSweepJob creates a new job for sweeping idle sessions.
// Sessions idle longer than ttl are dropped.
func NewSessionSweepJob(sweeper SessionSweeper, ttl time.Duration, logger *slog.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sweeper: sweeper,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "session_sweep_job"),
	}
}

// Start begins the session sweep job to run every five minutes.
func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		dropped, err := j.sweeper.DeleteIdleBefore(ctx, time.Now().Add(-j.ttl))
		if err != nil {
			j.logger.ErrorContext(ctx, "Session sweep failed", "error", err)
			return
		}

		if dropped > 0 {
			j.logger.InfoContext(ctx, "Stale checkout sessions swept", "dropped", dropped)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started (running every five minutes)")
	return nil
}

// Stop stops the session sweep job.
func (j *SessionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
