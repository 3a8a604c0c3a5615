// Package jobs provides scheduled background tasks for the order lifecycle
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every five minutes and logs non-terminal orders
// whose updatedAt has not moved within the configured threshold. The job only
// observes and reports; it never mutates order state.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(staleOrdersHandler, threshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
