// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. RiderProvisioningJob - repairs active riders whose rider account was not
// created when an admin activated them. Each pass handles up to 100 riders.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(provisionHandler, "0 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a leading seconds field.
// The provisioning schedule comes from RIDER_PROVISIONING_SCHEDULE and
// defaults to once a minute. A pass still running when the next one is due
// causes that tick to be skipped.
//
// # Error Handling
//
// - A failure to list candidates is logged and retried on the next tick
// - Failures on individual riders are logged together; the rest of the batch still runs
// - Failed job starts are reported to the caller
package jobs
