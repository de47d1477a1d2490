package jobs

import (
	"context"
	"log/slog"
	"time"

	"gescom/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderArchivingJob periodically moves cancelled orders into the
// history table. Each run stamps the records with its own start time so
// a whole batch shares one archival timestamp.
type OrderArchivingJob struct {
	handler  commands.ArchiveCancelledOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderArchivingJob creates the archiving job with a standard
// five-field cron schedule (e.g. "30 2 * * *" for 02:30 nightly).
func NewOrderArchivingJob(
	handler commands.ArchiveCancelledOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderArchivingJob {
	return &OrderArchivingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "order_archiving_job"),
	}
}

// Start registers the job on its schedule and begins the cron loop.
func (j *OrderArchivingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewArchiveCancelledOrdersCommand(time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order archiving job misconfigured", "error", err)
			return
		}

		archived, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order archiving job failed", "error", err)
			return
		}

		if archived == 0 {
			j.logger.DebugContext(ctx, "Order archiving job found nothing to archive")
			return
		}
		j.logger.InfoContext(ctx, "Order archiving job completed", "archived", archived)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order archiving job started", "schedule", j.schedule)
	return nil
}

// Stop stops the archiving job.
func (j *OrderArchivingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order archiving job stopped")
}
