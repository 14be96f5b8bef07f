package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails with a conflict error when the order number is already taken,
	// which the caller handles by regenerating the number and retrying.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNo retrieves an order aggregate by its business order number.
	GetByOrderNo(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error)

	// GetByOrderNoForUpdate retrieves an order aggregate by its business order
	// number with a row-level lock (SELECT ... FOR UPDATE). Status changes
	// must use this so two concurrent transitions serialize on the order row:
	// the loser re-reads the committed status and the transition table rejects
	// it, instead of both observing the same stale status.
	GetByOrderNoForUpdate(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error)

	// GetAllUnassignedInWaitingPickup retrieves orders that are waiting for
	// pickup and have no courier yet. Used by the backfill job to assign
	// couriers to orders created while nobody was available.
	GetAllUnassignedInWaitingPickup(ctx context.Context) ([]*order.Order, error)
}
