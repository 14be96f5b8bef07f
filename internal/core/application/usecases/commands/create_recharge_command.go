package commands

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateRechargeCommandIsNotConstructed = errors.New(
		"CreateRechargeCommand must be created via NewCreateRechargeCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// CreateRechargeCommand represents a request to start a top-up.
// The record is created pending; credits are granted only when the payment
// provider later confirms the transaction.
type CreateRechargeCommand struct { //nolint:recvcheck //using for validation
	rechargeID kernel.UUID
	userID     kernel.UserID
	amount     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateRechargeCommand creates a command to start a top-up.
// Validates identifiers and that the amount is positive; whether the amount
// matches a configured plan is decided when the command is handled.
func NewCreateRechargeCommand(
	rechargeID kernel.UUID,
	userID kernel.UserID,
	amount decimal.Decimal,
) (CreateRechargeCommand, error) {
	rechargeCommand := CreateRechargeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rechargeCommand.setRechargeID(rechargeID),
		rechargeCommand.setUserID(userID),
		rechargeCommand.setAmount(amount),
	); err != nil {
		return CreateRechargeCommand{}, err
	}

	return rechargeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRechargeCommandIsNotConstructed if validation fails.
func (c CreateRechargeCommand) Validate() error {
	return c.guard.Validate(ErrCreateRechargeCommandIsNotConstructed)
}

// RechargeID returns the unique identifier for the recharge record.
func (c CreateRechargeCommand) RechargeID() kernel.UUID {
	return c.rechargeID
}

// UserID returns the identifier of the account being topped up.
func (c CreateRechargeCommand) UserID() kernel.UserID {
	return c.userID
}

// Amount returns the money the user intends to pay.
func (c CreateRechargeCommand) Amount() decimal.Decimal {
	return c.amount
}

func (c *CreateRechargeCommand) setRechargeID(rechargeID kernel.UUID) error {
	if err := rechargeID.Validate(); err != nil {
		return err
	}

	c.rechargeID = rechargeID
	return nil
}

func (c *CreateRechargeCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *CreateRechargeCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}
