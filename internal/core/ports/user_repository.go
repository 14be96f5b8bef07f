// Package ports defines repository interfaces for the pickup point domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// The credit balance lives on the user row, so every balance mutation goes
// through this repository under a row-level lock.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its identifier without locking.
	// Suitable for reads that do not mutate the balance.
	Get(ctx context.Context, id kernel.UserID) (*user.User, error)

	// GetForUpdate retrieves a user aggregate and locks its row until the
	// surrounding transaction ends (SELECT ... FOR UPDATE). Every debit and
	// credit must load the user through this method: concurrent mutations
	// of the same balance then serialize on the lock, which is what keeps
	// the balance from going negative or being spent twice.
	GetForUpdate(ctx context.Context, id kernel.UserID) (*user.User, error)
}
