// Package jobs provides scheduled background tasks for the food service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Order state transitions themselves are applied lazily on read and write
// paths, so no per-order sweeper is needed; the only scheduled work is
// reporting.
//
// # Available Jobs
//
// 1. SettlementSummaryJob - Runs nightly to log the previous day's
// platform commission totals.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dailyProfitHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
