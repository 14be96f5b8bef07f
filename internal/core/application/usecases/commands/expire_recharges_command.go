package commands

import (
	"errors"
	"time"

	"pickpoint/internal/pkg/guard"
)

var (
	ErrExpireRechargesCommandIsNotConstructed = errors.New(
		"ExpireRechargesCommand must be created via NewExpireRechargesCommand constructor",
	)
	ErrDeadlineIsRequired = errors.New("deadline is required")
)

// ExpireRechargesCommand fails pending top-ups whose payment never arrived.
// The deadline is absolute: every pending record created before it is failed.
type ExpireRechargesCommand struct { //nolint:recvcheck //using for validation
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewExpireRechargesCommand creates a command to fail abandoned top-ups.
func NewExpireRechargesCommand(deadline time.Time) (ExpireRechargesCommand, error) {
	expireCommand := ExpireRechargesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setDeadline(deadline); err != nil {
		return ExpireRechargesCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireRechargesCommandIsNotConstructed if validation fails.
func (c ExpireRechargesCommand) Validate() error {
	return c.guard.Validate(ErrExpireRechargesCommandIsNotConstructed)
}

// Deadline returns the cutoff: pending records created before it are failed.
func (c ExpireRechargesCommand) Deadline() time.Time {
	return c.deadline
}

func (c *ExpireRechargesCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return ErrDeadlineIsRequired
	}

	c.deadline = deadline
	return nil
}
