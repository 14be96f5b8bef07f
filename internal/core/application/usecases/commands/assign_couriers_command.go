package commands

import (
	"errors"

	"pickpoint/internal/pkg/guard"
)

var ErrAssignCouriersCommandIsNotConstructed = errors.New(
	"AssignCouriersCommand must be created via NewAssignCouriersCommand constructor",
)

// AssignCouriersCommand triggers the backfill of couriers onto orders that
// were placed while nobody was available. This is a parameterless command run
// periodically by the job scheduler.
type AssignCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignCouriersCommand creates a new command to trigger courier backfill.
func NewAssignCouriersCommand() AssignCouriersCommand {
	return AssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCouriersCommandIsNotConstructed if validation fails.
func (c *AssignCouriersCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignCouriersCommandIsNotConstructed,
	)
}
