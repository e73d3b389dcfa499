package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// NoticeFlusher re-attempts parked dispatch notices. Implemented by the
// retry notifier in the dispatch adapter.
type NoticeFlusher interface {
	Flush(ctx context.Context) (delivered, pending int)
}

// DispatchRetryJob manages the scheduled draining of the dispatch retry queue.
// Runs every minute so a webhook outage delays notices instead of losing them.
type DispatchRetryJob struct {
	flusher NoticeFlusher
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchRetryJob creates a new job for re-sending parked dispatch notices.
func NewDispatchRetryJob(flusher NoticeFlusher, logger *slog.Logger) *DispatchRetryJob {
	return &DispatchRetryJob{
		flusher: flusher,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_retry_job"),
	}
}

// Start begins the dispatch retry job to run every minute.
func (j *DispatchRetryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		delivered, pending := j.flusher.Flush(ctx)
		if delivered > 0 || pending > 0 {
			j.logger.InfoContext(ctx, "Dispatch retry queue flushed", "delivered", delivered, "pending", pending)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch retry job started (running every minute)")
	return nil
}

// Stop stops the dispatch retry job.
func (j *DispatchRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch retry job stopped")
}
