package queries

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/guard"
)

var ErrGetUserBalanceQueryIsNotConstructed = errors.New(
	"GetUserBalanceQuery must be created via NewGetUserBalanceQuery constructor",
)

// GetUserBalanceQuery retrieves a user's current credit balance.
type GetUserBalanceQuery struct {
	userID kernel.UserID

	guard guard.ConstructorGuard
}

// NewGetUserBalanceQuery creates a query for a user's credit balance.
func NewGetUserBalanceQuery(userID kernel.UserID) (GetUserBalanceQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserBalanceQuery{}, err
	}

	return GetUserBalanceQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserBalanceQueryIsNotConstructed if validation fails.
func (q GetUserBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetUserBalanceQueryIsNotConstructed)
}

// UserID returns the account whose balance is read.
func (q GetUserBalanceQuery) UserID() kernel.UserID {
	return q.userID
}

// GetUserBalanceQueryResponse carries a user's credit balance.
type GetUserBalanceQueryResponse struct {
	UserID        string
	CreditBalance int
}
