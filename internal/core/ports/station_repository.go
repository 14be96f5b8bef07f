package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/kernel"
)

// StationRepository defines the lookup contract for pickup stations.
// Station management happens elsewhere; order creation only needs to know
// that the referenced station exists.
type StationRepository interface {
	// Exists reports whether a station with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

// TimeSlotRepository defines the lookup contract for delivery time slots.
type TimeSlotRepository interface {
	// Exists reports whether a time slot with the given identifier exists.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
