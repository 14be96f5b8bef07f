package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/courier"
	"pickpoint/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
// Couriers are reference data here: the order flow only reads them.
type CourierRepository interface {
	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllAvailable retrieves all couriers currently accepting orders.
	// The result is not locked: selection from it is best effort.
	GetAllAvailable(ctx context.Context) ([]*courier.Courier, error)
}
