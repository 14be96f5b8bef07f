package queries

import (
	"context"

	"pickpoint/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// HasUnpaidOrderQueryHandler checks for orders awaiting payment.
type HasUnpaidOrderQueryHandler struct {
	db *gorm.DB
}

// NewHasUnpaidOrderQueryHandler creates a handler for unpaid order checks.
func NewHasUnpaidOrderQueryHandler(db *gorm.DB) HasUnpaidOrderQueryHandler {
	return HasUnpaidOrderQueryHandler{db: db}
}

// Handle executes the check. Returns true when the user has at least one
// order in waiting_payment status.
func (h HasUnpaidOrderQueryHandler) Handle(ctx context.Context, query HasUnpaidOrderQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE user_id = ? AND status = ?",
			query.UserID().String(), order.StatusWaitingPayment.String()).
		Scan(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
