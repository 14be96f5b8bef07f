package queries

import (
	"context"

	"pickpoint/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler retrieves pages of a user's orders from the database.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order listing.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. Rows come back newest first; the total counts
// every matching row, not just the returned page.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) (GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	where := "user_id = ?"
	args := []any{query.UserID().String()}
	if filter := query.StatusFilter(); filter != nil {
		where += " AND status = ?"
		args = append(args, filter.String())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_no,
			status,
			pickup_code,
			item_description,
			amount,
			courier_id,
			order_time
		FROM orders
		WHERE `+where+`
		ORDER BY order_time DESC, order_no DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...).Rows()
	if err != nil {
		return GetUserOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]UserOrderResponse, 0, query.PageSize())
	for rows.Next() {
		var row UserOrderResponse
		var amount decimal.Decimal
		var courierID *uuid.UUID

		err = rows.Scan(
			&row.OrderNo,
			&row.Status,
			&row.PickupCode,
			&row.ItemDescription,
			&amount,
			&courierID,
			&row.OrderTime,
		)
		if err != nil {
			return GetUserOrdersQueryResponse{}, err
		}

		row.Amount = amount
		if courierID != nil {
			id, idErr := kernel.UUIDFromBytes((*courierID)[:])
			if idErr != nil {
				return GetUserOrdersQueryResponse{}, idErr
			}
			row.CourierID = &id
		}

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return GetUserOrdersQueryResponse{}, err
	}

	return GetUserOrdersQueryResponse{
		Orders: orders,
		Total:  total,
	}, nil
}
