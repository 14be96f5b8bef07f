package ports

import (
	"context"
	"time"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/recharge"

	"github.com/shopspring/decimal"
)

// RechargeRepository defines the persistence contract for recharge records.
type RechargeRepository interface {
	// Add persists a new recharge record to storage.
	Add(ctx context.Context, aggregate *recharge.RechargeRecord) error

	// Update persists changes to an existing recharge record.
	Update(ctx context.Context, aggregate *recharge.RechargeRecord) error

	// Get retrieves a recharge record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recharge.RechargeRecord, error)

	// GetByExternalRef retrieves the record already confirmed with the given
	// payment reference, or a not-found error when none exists. Used to
	// recognize replayed provider callbacks.
	GetByExternalRef(ctx context.Context, externalRef string) (*recharge.RechargeRecord, error)

	// GetLatestPending retrieves the user's most recent pending record for
	// the given amount. When several match, the newest wins (created_at
	// descending, then identifier descending).
	GetLatestPending(ctx context.Context, userID kernel.UserID, amount decimal.Decimal) (*recharge.RechargeRecord, error)

	// GetAllPendingCreatedBefore retrieves pending records older than the
	// given deadline. Used by the expiry job to fail abandoned top-ups.
	GetAllPendingCreatedBefore(ctx context.Context, deadline time.Time) ([]*recharge.RechargeRecord, error)
}
