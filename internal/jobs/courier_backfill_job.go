package jobs

import (
	"context"
	"log/slog"

	"pickpoint/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CourierBackfillJob manages the scheduled assignment of couriers to orders
// that were placed while no courier was available. Runs every 30 seconds.
type CourierBackfillJob struct {
	handler commands.AssignCouriersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCourierBackfillJob creates a new job for backfilling courier assignments.
func NewCourierBackfillJob(handler commands.AssignCouriersCommandHandler, logger *slog.Logger) *CourierBackfillJob {
	return &CourierBackfillJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "courier_backfill_job"),
	}
}

// Start begins the backfill job on its 30 second schedule.
func (j *CourierBackfillJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignCouriersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Courier backfill job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier backfill job started (running every 30 seconds)")
	return nil
}

// Stop stops the backfill job.
func (j *CourierBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Courier backfill job stopped")
}
