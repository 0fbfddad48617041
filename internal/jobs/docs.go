// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order delivery workflow.
//
// # Available Jobs
//
// 1. DeliveryReminderJob - Runs every minute to flag orders whose expected
// delivery date has passed without a delivery confirmation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderUoWFactory, logger)
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
// The reminder job uses the cron expression "0 * * * * *" which fires at the
// top of every minute. Overdue orders are reported as warnings each run until
// they are marked delivered.
package jobs
