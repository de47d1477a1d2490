// Package jobs provides scheduled background tasks for the management
// console backend.
//
// Jobs are built on github.com/robfig/cron/v3 and coordinated through
// JobManager:
//
//	jobManager := jobs.NewJobManager(archiveHandler, schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// 1. OrderArchivingJob - Copies cancelled orders into the history table
// so the day-to-day order list stays limited to live records. The
// schedule is configurable; the default runs nightly.
//
// # Error Handling
//
// The archiving job logs every failure. An empty run (no cancelled
// orders waiting) is not an error and is logged at debug level only.
package jobs
