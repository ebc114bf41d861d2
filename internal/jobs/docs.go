// Package jobs provides scheduled background tasks for the ordering bot.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping outside the request path.
//
// # Available Jobs
//
// 1. CartCleanupJob - Periodically deletes carts whose sessions went quiet,
// so abandoned conversations do not accumulate rows forever.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cartRepository, cartTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
