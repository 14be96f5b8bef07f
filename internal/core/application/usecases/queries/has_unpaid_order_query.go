package queries

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/guard"
)

var ErrHasUnpaidOrderQueryIsNotConstructed = errors.New(
	"HasUnpaidOrderQuery must be created via NewHasUnpaidOrderQuery constructor",
)

// HasUnpaidOrderQuery reports whether a user has any order awaiting payment.
// Clients use it to nudge the user to settle before placing new orders.
type HasUnpaidOrderQuery struct {
	userID kernel.UserID

	guard guard.ConstructorGuard
}

// NewHasUnpaidOrderQuery creates a query for a user's unpaid order flag.
func NewHasUnpaidOrderQuery(userID kernel.UserID) (HasUnpaidOrderQuery, error) {
	if err := userID.Validate(); err != nil {
		return HasUnpaidOrderQuery{}, err
	}

	return HasUnpaidOrderQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrHasUnpaidOrderQueryIsNotConstructed if validation fails.
func (q HasUnpaidOrderQuery) Validate() error {
	return q.guard.Validate(ErrHasUnpaidOrderQueryIsNotConstructed)
}

// UserID returns the account being checked.
func (q HasUnpaidOrderQuery) UserID() kernel.UserID {
	return q.userID
}
