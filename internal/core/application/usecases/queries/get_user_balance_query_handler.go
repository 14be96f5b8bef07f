package queries

import (
	"context"
	"database/sql"
	"errors"

	"pickpoint/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserBalanceQueryHandler reads a user's credit balance from the database.
// The read is unlocked: the balance may move concurrently and the response is
// a snapshot, which is all a display needs.
type GetUserBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetUserBalanceQueryHandler creates a handler for balance lookups.
func NewGetUserBalanceQueryHandler(db *gorm.DB) GetUserBalanceQueryHandler {
	return GetUserBalanceQueryHandler{db: db}
}

// Handle executes the balance lookup.
func (h GetUserBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetUserBalanceQuery,
) (GetUserBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserBalanceQueryResponse{}, err
	}

	var balance int
	err := h.db.WithContext(ctx).
		Raw("SELECT credit_balance FROM users WHERE id = ?", query.UserID().String()).
		Row().Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserBalanceQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
		}
		return GetUserBalanceQueryResponse{}, err
	}

	return GetUserBalanceQueryResponse{
		UserID:        query.UserID().String(),
		CreditBalance: balance,
	}, nil
}
