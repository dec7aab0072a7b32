// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order ledger.
//
// # Available Jobs
//
// 1. PaymentExpirationJob - Runs every minute to expire pending payments whose deadline has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expirePaymentsHandler, logger)
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
// The expiration job uses the cron expression "0 * * * * *", firing at the
// top of every minute. Expiration is idempotent, so an overlapping or missed
// run only delays when a payment flips to Expired.
//
// # Error Handling
//
// - The expiration job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
