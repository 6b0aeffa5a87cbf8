package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiptrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StaleRequestJob periodically reports pending location requests the oracle
// never answered. An unanswered request stays Issued; this job makes those
// visible to operators without touching them.
type StaleRequestJob struct {
	uowFactory ports.UnitOfWorkFactory
	maxAge     time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStaleRequestJob creates a job that flags requests issued more than
// maxAge ago and still unresolved.
func NewStaleRequestJob(uowFactory ports.UnitOfWorkFactory, maxAge time.Duration, logger *slog.Logger) *StaleRequestJob {
	return &StaleRequestJob{
		uowFactory: uowFactory,
		maxAge:     maxAge,
		cron:       cron.New(),
		logger:     logger.With("component", "stale_request_job"),
	}
}

// Start begins the stale request scan, running once a minute.
func (j *StaleRequestJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.scan)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale request job started (running every minute)")
	return nil
}

// Stop stops the stale request job.
func (j *StaleRequestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale request job stopped")
}

func (j *StaleRequestJob) scan() {
	ctx := context.Background()
	cutoff := time.Now().Add(-j.maxAge)

	uow := j.uowFactory.Create()
	stale, err := uow.RequestRepository().GetAllIssuedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale request scan failed", "error", err)
		return
	}

	for _, pending := range stale {
		j.logger.WarnContext(ctx, "Location request still unanswered",
			"request_id", pending.ID().String(),
			"order_id", pending.OrderID().String(),
			"action", pending.Action().String())
	}
}
