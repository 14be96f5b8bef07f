package commands

import (
	"context"
	"time"

	"pickpoint/internal/core/domain/model/recharge"
)

// CreateRechargeCommandHandler handles the business logic for starting a top-up.
// Resolves the paid amount against the configured plan table and persists a
// pending record. No credits move until the payment is confirmed.
type CreateRechargeCommandHandler struct {
	uowFactory RechargeUoWFactory
	plans      recharge.Plans
}

// NewCreateRechargeCommandHandler creates a handler for starting top-ups.
func NewCreateRechargeCommandHandler(uowFactory RechargeUoWFactory, plans recharge.Plans) CreateRechargeCommandHandler {
	return CreateRechargeCommandHandler{
		uowFactory: uowFactory,
		plans:      plans,
	}
}

// Handle processes the command and returns the pending record.
// An amount outside the plan table fails with recharge.ErrNoPlanForAmount.
func (h CreateRechargeCommandHandler) Handle(ctx context.Context, command CreateRechargeCommand) (*recharge.RechargeRecord, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	credits, err := h.plans.CreditsFor(command.Amount())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The user must exist before we accept money on their behalf.
	if _, err = uow.UserRepository().Get(ctx, command.UserID()); err != nil {
		return nil, err
	}

	record, err := recharge.NewRecord(
		command.RechargeID(),
		command.UserID(),
		command.Amount(),
		credits,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.RechargeRepository().Add(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
