package commands

import (
	"context"

	"pickpoint/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
//
// The aggregate's transition table decides legality; the handler only adds the
// cross-aggregate effect: cancelling before pickup refunds the single credit
// the placement debited, in the same transaction as the status flip. The order
// row is read under a row-level lock, so of two concurrent cancels one blocks,
// re-reads the already-terminal status and fails with ErrIllegalTransition
// rather than refunding a second time.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for order status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderStatusUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Illegal transitions surface as order.ErrIllegalTransition wrapped with the
// current and requested statuses.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, command ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByOrderNoForUpdate(ctx, command.OrderNo())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(command.Target()); err != nil {
		return err
	}

	if command.Target() == order.StatusCancelled {
		if err = h.refund(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// refund returns the placement debit to the payer.
// The user row is locked so a refund racing a placement for the same user
// cannot lose an update.
func (h ChangeOrderStatusCommandHandler) refund(ctx context.Context, uow OrderStatusUoW, aggregate *order.Order) error {
	userRepo := uow.UserRepository()

	payer, err := userRepo.GetForUpdate(ctx, aggregate.UserID())
	if err != nil {
		return err
	}

	if err = payer.AddCredits(1); err != nil {
		return err
	}

	return userRepo.Update(ctx, payer)
}
