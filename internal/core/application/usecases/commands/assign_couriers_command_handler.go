package commands

import (
	"context"

	"pickpoint/internal/core/domain/services"
)

// AssignCouriersCommandHandler backfills couriers onto unassigned orders.
//
// Orders are processed oldest first and every assignment uses the same
// selection rule as placement: the available courier with the lowest
// identifier. Selection does not reserve, so one run may hand several orders
// to the same courier; that matches how placement behaves under concurrency.
type AssignCouriersCommandHandler struct {
	uowFactory      AssignUoWFactory
	courierSelector services.CourierSelector
}

// NewAssignCouriersCommandHandler creates a handler for courier backfill operations.
func NewAssignCouriersCommandHandler(
	uowFactory AssignUoWFactory,
	courierSelector services.CourierSelector,
) AssignCouriersCommandHandler {
	return AssignCouriersCommandHandler{
		uowFactory:      uowFactory,
		courierSelector: courierSelector,
	}
}

// Handle processes the backfill command.
// A run with no unassigned orders or no available couriers is a no-op, not an error.
func (h AssignCouriersCommandHandler) Handle(ctx context.Context, command AssignCouriersCommand) error {
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
	orders, err := orderRepo.GetAllUnassignedInWaitingPickup(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return nil
	}

	couriers, err := uow.CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		selected, err := h.courierSelector.SelectCourier(couriers)
		if err != nil {
			return err
		}
		if selected == nil {
			break
		}

		if err = aggregate.AssignCourier(selected.ID()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
