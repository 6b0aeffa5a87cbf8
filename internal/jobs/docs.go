// Package jobs provides scheduled background tasks for the shipment tracker.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated through
// JobManager:
//
//	jobManager := jobs.NewJobManager(uowFactory, time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job is StaleRequestJob, which scans once a minute for location
// requests the oracle has left unanswered past a configured age and logs
// them. It never resolves or retries them: the oracle may still answer, and
// parties can always issue a fresh check.
package jobs
