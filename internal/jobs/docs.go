// Package jobs provides scheduled background tasks for the pickup point service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order and ledger flows.
//
// # Available Jobs
//
// 1. CourierBackfillJob - periodically assigns couriers to orders placed while
// nobody was available
// 2. RechargeExpiryJob - periodically fails pending top-ups whose payment
// never arrived
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignHandler, expireHandler, pendingTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs log failures and carry on; a failed run is retried implicitly by
// the next tick.
package jobs
