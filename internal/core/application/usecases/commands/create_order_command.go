package commands

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemDescriptionIsRequired = errors.New("item description is required")
)

// CreateOrderCommand represents a request to place a new pickup order.
// Encapsulates the payer, the destination station, the delivery time slot
// and a description of the item to deliver.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, userID, stationID, timeSlotID, "documents")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, selector, fee)
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	userID          kernel.UserID
	stationID       kernel.UUID
	timeSlotID      kernel.UUID
	itemDescription string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new pickup order.
// Validates that all identifiers are valid and the item description is not empty.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UserID,
	stationID kernel.UUID,
	timeSlotID kernel.UUID,
	itemDescription string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setStationID(stationID),
		orderCommand.setTimeSlotID(timeSlotID),
		orderCommand.setItemDescription(itemDescription),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the paying user.
func (c CreateOrderCommand) UserID() kernel.UserID {
	return c.userID
}

// StationID returns the destination station identifier.
func (c CreateOrderCommand) StationID() kernel.UUID {
	return c.stationID
}

// TimeSlotID returns the delivery time slot identifier.
func (c CreateOrderCommand) TimeSlotID() kernel.UUID {
	return c.timeSlotID
}

// ItemDescription returns the description of the item to deliver.
func (c CreateOrderCommand) ItemDescription() string {
	return c.itemDescription
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setStationID(stationID kernel.UUID) error {
	if err := stationID.Validate(); err != nil {
		return err
	}

	c.stationID = stationID
	return nil
}

func (c *CreateOrderCommand) setTimeSlotID(timeSlotID kernel.UUID) error {
	if err := timeSlotID.Validate(); err != nil {
		return err
	}

	c.timeSlotID = timeSlotID
	return nil
}

func (c *CreateOrderCommand) setItemDescription(itemDescription string) error {
	if itemDescription == "" {
		return ErrItemDescriptionIsRequired
	}

	c.itemDescription = itemDescription
	return nil
}
