// Package jobs provides scheduled background tasks for the scheduling board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. BoardRefreshJob - Re-fetches the loaded date range on a schedule so the
// board converges on server state between explicit user refreshes.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(store, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh leaves the board's previous state intact; the failure is
// logged and the next tick tries again.
package jobs
