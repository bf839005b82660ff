// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic housekeeping that must not run inside a request.
//
// # Available Jobs
//
// 1. NotificationRetentionJob - deletes read notifications older than the configured retention
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewNotificationRetentionJob(purgeHandler, "0 3 * * *", 90*24*time.Hour, logger),
//	)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are standard five-field cron expressions or descriptors such as "@daily".
//
// # Error Handling
//
// - A failed run is logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
