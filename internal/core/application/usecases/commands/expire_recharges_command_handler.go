package commands

import (
	"context"
	"errors"
	"time"

	"pickpoint/internal/core/domain/model/recharge"
)

// ExpireRechargesCommandHandler fails pending top-ups abandoned by the payer.
// A failed record can never be confirmed afterwards: a late provider callback
// hits the finalization guard and reports recharge.ErrAlreadyFinalized.
type ExpireRechargesCommandHandler struct {
	uowFactory RechargeUoWFactory
}

// NewExpireRechargesCommandHandler creates a handler for recharge expiry operations.
func NewExpireRechargesCommandHandler(uowFactory RechargeUoWFactory) ExpireRechargesCommandHandler {
	return ExpireRechargesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry command. A run with nothing to expire is a no-op.
func (h ExpireRechargesCommandHandler) Handle(ctx context.Context, command ExpireRechargesCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rechargeRepo := uow.RechargeRepository()
	records, err := rechargeRepo.GetAllPendingCreatedBefore(ctx, command.Deadline())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	now := time.Now()
	for _, record := range records {
		if err = record.Fail(now); err != nil {
			return err
		}

		// A record confirmed after the stale read loses the compare-and-swap;
		// it keeps its success status and its credits, the run moves on.
		if err = rechargeRepo.Update(ctx, record); err != nil {
			if errors.Is(err, recharge.ErrAlreadyFinalized) {
				continue
			}
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
