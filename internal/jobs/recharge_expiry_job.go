package jobs

import (
	"context"
	"log/slog"
	"time"

	"pickpoint/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RechargeExpiryJob fails pending top-ups whose payment never arrived.
// Runs every minute; a record expires once it has been pending longer than
// the configured TTL.
type RechargeExpiryJob struct {
	handler    commands.ExpireRechargesCommandHandler
	pendingTTL time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewRechargeExpiryJob creates a new job for expiring abandoned top-ups.
func NewRechargeExpiryJob(
	handler commands.ExpireRechargesCommandHandler,
	pendingTTL time.Duration,
	logger *slog.Logger,
) *RechargeExpiryJob {
	return &RechargeExpiryJob{
		handler:    handler,
		pendingTTL: pendingTTL,
		cron:       cron.New(),
		logger:     logger.With("component", "recharge_expiry_job"),
	}
}

// Start begins the expiry job on its per-minute schedule.
func (j *RechargeExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpireRechargesCommand(time.Now().Add(-j.pendingTTL))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Recharge expiry job misconfigured", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Recharge expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Recharge expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *RechargeExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Recharge expiry job stopped")
}
