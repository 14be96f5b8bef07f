package commands

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrConfirmRechargeCommandIsNotConstructed = errors.New(
		"ConfirmRechargeCommand must be created via NewConfirmRechargeCommand constructor",
	)
	ErrExternalRefIsRequired = errors.New("external payment reference is required")
)

// ConfirmRechargeCommand represents a payment provider callback reporting a
// successful top-up. Providers retry callbacks, so handling is idempotent:
// the same reference confirms at most one record.
type ConfirmRechargeCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UserID
	amount      decimal.Decimal
	externalRef string

	guard guard.ConstructorGuard
}

// NewConfirmRechargeCommand creates a command to reconcile a confirmed payment.
func NewConfirmRechargeCommand(
	userID kernel.UserID,
	amount decimal.Decimal,
	externalRef string,
) (ConfirmRechargeCommand, error) {
	confirmCommand := ConfirmRechargeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		confirmCommand.setUserID(userID),
		confirmCommand.setAmount(amount),
		confirmCommand.setExternalRef(externalRef),
	); err != nil {
		return ConfirmRechargeCommand{}, err
	}

	return confirmCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmRechargeCommandIsNotConstructed if validation fails.
func (c ConfirmRechargeCommand) Validate() error {
	return c.guard.Validate(ErrConfirmRechargeCommandIsNotConstructed)
}

// UserID returns the identifier of the account being topped up.
func (c ConfirmRechargeCommand) UserID() kernel.UserID {
	return c.userID
}

// Amount returns the money the provider reports as paid.
func (c ConfirmRechargeCommand) Amount() decimal.Decimal {
	return c.amount
}

// ExternalRef returns the provider's transaction reference.
func (c ConfirmRechargeCommand) ExternalRef() string {
	return c.externalRef
}

func (c *ConfirmRechargeCommand) setUserID(userID kernel.UserID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ConfirmRechargeCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *ConfirmRechargeCommand) setExternalRef(externalRef string) error {
	if externalRef == "" {
		return ErrExternalRefIsRequired
	}

	c.externalRef = externalRef
	return nil
}
