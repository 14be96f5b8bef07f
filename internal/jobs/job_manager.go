package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"pickpoint/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierBackfillJob *CourierBackfillJob
	rechargeExpiryJob  *RechargeExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	assignHandler commands.AssignCouriersCommandHandler,
	expireHandler commands.ExpireRechargesCommandHandler,
	pendingTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierBackfillJob: NewCourierBackfillJob(assignHandler, logger),
		rechargeExpiryJob:  NewRechargeExpiryJob(expireHandler, pendingTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierBackfillJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier backfill job: %w", err)
	}

	if err := jm.rechargeExpiryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierBackfillJob.Stop()
		return fmt.Errorf("failed to start recharge expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rechargeExpiryJob.Stop()
	jm.courierBackfillJob.Stop()
}
