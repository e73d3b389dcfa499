// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the order flow leaves behind.
//
// # Available Jobs
//
// 1. DispatchRetryJob - Runs every minute to re-send dispatch notices whose delivery failed
// 2. SessionSweepJob - Runs every five minutes to evict checkout sessions abandoned mid-protocol
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required collaborators
//	jobManager := jobs.NewJobManager(retryNotifier, sessionStore, sessionTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The retry job uses "0 * * * * *" (top of every minute); the sweep job uses
// "0 */5 * * * *" (every five minutes). Neither flow is latency-sensitive:
// a parked notice just reaches dispatch a little later, and an abandoned
// session only occupies memory.
//
// # Error Handling
//
// - The retry job has no error path of its own: notices that fail again simply stay parked
// - The sweep job logs sweep failures as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
