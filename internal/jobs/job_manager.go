package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchRetryJob *DispatchRetryJob
	sessionSweepJob  *SessionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the dispatch flusher and session sweeper as dependencies to wire
// up the job execution.
func NewJobManager(
	flusher NoticeFlusher,
	sweeper SessionSweeper,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchRetryJob: NewDispatchRetryJob(flusher, logger),
		sessionSweepJob:  NewSessionSweepJob(sweeper, sessionTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch retry job: %w", err)
	}

	if err := jm.sessionSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchRetryJob.Stop()
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionSweepJob.Stop()
	jm.dispatchRetryJob.Stop()
}
