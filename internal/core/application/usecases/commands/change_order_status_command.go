package commands

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order along its
// lifecycle: courier pickup, station arrival, custody hand-off, payment
// settlement or cancellation.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNo kernel.OrderNo
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the order number and that the target is a known status; whether
// the transition is legal from the order's current status is decided by the
// aggregate when the command is handled.
func NewChangeOrderStatusCommand(orderNo kernel.OrderNo, target order.Status) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderNo(orderNo),
		statusCommand.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderNo returns the business number of the order to move.
func (c ChangeOrderStatusCommand) OrderNo() kernel.OrderNo {
	return c.orderNo
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderNo(orderNo kernel.OrderNo) error {
	if err := orderNo.Validate(); err != nil {
		return err
	}

	c.orderNo = orderNo
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
