package commands

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/core/domain/services"
	"pickpoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// orderNoAttempts bounds the retries on order number collisions.
// The number embeds a second-resolution timestamp plus a random suffix, so a
// collision is already rare; three attempts are enough in practice.
const orderNoAttempts = 3

// ErrOrderNoExhausted is returned when every generated order number collided
// with an existing one. Transient: the client can simply retry.
var ErrOrderNoExhausted = errors.New("could not generate a unique order number")

// CreateOrderCommandHandler handles the business logic for order creation.
//
// Placement debits one credit from the payer under a row-level lock, picks an
// available courier best effort and persists the order in waiting_pickup
// status, all in a single transaction. When the generated order number
// collides with an existing one the whole transaction is retried with a fresh
// number, so a failed attempt never leaves a dangling debit.
type CreateOrderCommandHandler struct {
	uowFactory      CreateOrderUoWFactory
	courierSelector services.CourierSelector
	deliveryFee     decimal.Decimal
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// The delivery fee is the money price attached to every order; the credit
// price is always exactly one credit.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	courierSelector services.CourierSelector,
	deliveryFee decimal.Decimal,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:      uowFactory,
		courierSelector: courierSelector,
		deliveryFee:     deliveryFee,
	}
}

// Handle processes the order creation command and returns the placed order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < orderNoAttempts; attempt++ {
		placed, err := h.createOnce(ctx, command)
		if err == nil {
			return placed, nil
		}
		if !errors.Is(err, errs.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrOrderNoExhausted, lastErr)
}

func (h CreateOrderCommandHandler) createOnce(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if exists, err := uow.StationRepository().Exists(ctx, command.StationID()); err != nil {
		return nil, err
	} else if !exists {
		return nil, errs.NewObjectNotFoundError("station", command.StationID().String())
	}

	if exists, err := uow.TimeSlotRepository().Exists(ctx, command.TimeSlotID()); err != nil {
		return nil, err
	} else if !exists {
		return nil, errs.NewObjectNotFoundError("timeSlot", command.TimeSlotID().String())
	}

	userRepo := uow.UserRepository()
	payer, err := userRepo.GetForUpdate(ctx, command.UserID())
	if err != nil {
		return nil, err
	}

	if err = payer.DebitCredit(); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, payer); err != nil {
		return nil, err
	}

	now := time.Now()
	placed, err := order.NewOrder(
		command.OrderID(),
		kernel.GenerateOrderNo(now),
		command.UserID(),
		command.StationID(),
		command.TimeSlotID(),
		generatePickupCode(),
		command.ItemDescription(),
		h.deliveryFee,
		now,
	)
	if err != nil {
		return nil, err
	}

	couriers, err := uow.CourierRepository().GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := h.courierSelector.SelectCourier(couriers)
	if err != nil {
		return nil, err
	}
	if selected != nil {
		if err = placed.AssignCourier(selected.ID()); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// generatePickupCode produces the six-digit code the recipient presents at the station.
func generatePickupCode() string {
	return fmt.Sprintf("%06d", rand.IntN(1000000))
}
