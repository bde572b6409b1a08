// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. OrderStatusJob - Runs every minute to advance active orders one step
// through the fulfillment lifecycle (Preparing, Out for Delivery, Delivered).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(advanceStatusesHandler, logger)
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
// The status job uses the cron expression "* * * * *" which means it runs
// once per minute. Delivered orders are terminal and are skipped; every
// other order moves exactly one step per tick.
//
// # Error Handling
//
// - Status job logs tick failures and waits for the next tick
// - Successful ticks that advanced at least one order are logged with the count
package jobs
