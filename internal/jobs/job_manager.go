package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"shiptrack/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	staleRequestJob *StaleRequestJob
}

// NewJobManager creates a job manager with all background jobs wired.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, staleRequestAge time.Duration, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleRequestJob: NewStaleRequestJob(uowFactory, staleRequestAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleRequestJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale request job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleRequestJob.Stop()
}
