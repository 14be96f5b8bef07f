// Package queries contains read-only operations over the persistence model.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// aggregates and their invariants.
package queries

import (
	"errors"
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrPageIsInvalid = errors.New("page must be greater than 0")
)

// GetUserOrdersQuery retrieves a page of a user's orders, newest first,
// optionally narrowed to a single status.
//
// Example:
//
//	status := order.StatusWaitingPayment
//	query, err := NewGetUserOrdersQuery(userID, &status, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := NewGetUserOrdersQueryHandler(db).Handle(ctx, query)
type GetUserOrdersQuery struct {
	userID       kernel.UserID
	statusFilter *order.Status
	page         int
	pageSize     int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a page of a user's orders.
// Page numbering starts at 1. A page size outside [1, 100] falls back to the
// default of 10.
func NewGetUserOrdersQuery(
	userID kernel.UserID,
	statusFilter *order.Status,
	page int,
	pageSize int,
) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if page < 1 {
		return GetUserOrdersQuery{}, ErrPageIsInvalid
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetUserOrdersQuery{}, err
		}
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return GetUserOrdersQuery{
		userID:       userID,
		statusFilter: statusFilter,
		page:         page,
		pageSize:     pageSize,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the owner whose orders are listed.
func (q GetUserOrdersQuery) UserID() kernel.UserID {
	return q.userID
}

// StatusFilter returns the optional status narrowing, or nil for all statuses.
func (q GetUserOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// Page returns the 1-based page number.
func (q GetUserOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of rows per page.
func (q GetUserOrdersQuery) PageSize() int {
	return q.pageSize
}

// GetUserOrdersQueryResponse is one page of a user's orders.
type GetUserOrdersQueryResponse struct {
	Orders []UserOrderResponse
	Total  int64
}

// UserOrderResponse represents a single order row in a user's order list.
type UserOrderResponse struct {
	OrderNo         string
	Status          string
	PickupCode      string
	ItemDescription string
	Amount          decimal.Decimal
	CourierID       *kernel.UUID
	OrderTime       time.Time
}
