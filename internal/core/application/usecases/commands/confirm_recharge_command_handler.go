package commands

import (
	"context"
	"errors"
	"time"

	"pickpoint/internal/core/domain/model/recharge"
	"pickpoint/internal/pkg/errs"
)

// ConfirmRechargeCommandHandler reconciles confirmed payments with pending records.
//
// Exactly-once crediting rests on three things committed in one transaction:
// the status write is a compare-and-swap on pending (a record finalized by a
// racing transaction fails with recharge.ErrAlreadyFinalized before any
// balance write commits), the external reference is stored under a unique
// index, and the user's balance is incremented under a row-level lock. A
// replayed callback finds its reference already stored and comes back as
// recharge.ErrAlreadyFinalized.
type ConfirmRechargeCommandHandler struct {
	uowFactory RechargeUoWFactory
}

// NewConfirmRechargeCommandHandler creates a handler for payment confirmations.
func NewConfirmRechargeCommandHandler(uowFactory RechargeUoWFactory) ConfirmRechargeCommandHandler {
	return ConfirmRechargeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation command.
// Matches the callback against the user's most recent pending record for the
// reported amount: with no identifier echoed back by the provider, newest
// pending is the only deterministic choice.
func (h ConfirmRechargeCommandHandler) Handle(ctx context.Context, command ConfirmRechargeCommand) error {
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

	// A record already carrying this reference means the callback is a replay.
	_, err := rechargeRepo.GetByExternalRef(ctx, command.ExternalRef())
	if err == nil {
		return recharge.ErrAlreadyFinalized
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	record, err := rechargeRepo.GetLatestPending(ctx, command.UserID(), command.Amount())
	if err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	account, err := userRepo.GetForUpdate(ctx, record.UserID())
	if err != nil {
		return err
	}

	if err = record.Confirm(command.ExternalRef(), time.Now()); err != nil {
		return err
	}

	if err = account.AddCredits(record.CreditsGranted()); err != nil {
		return err
	}

	if err = rechargeRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
