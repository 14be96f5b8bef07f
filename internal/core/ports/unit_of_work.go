package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// UserRepository returns a UserRepository instance bound to the current transaction.
	// Row locks taken by GetForUpdate are held until Commit or Rollback.
	UserRepository() UserRepository

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	OrderRepository() OrderRepository

	// RechargeRepository returns a RechargeRepository instance bound to the current transaction.
	RechargeRepository() RechargeRepository

	// CourierRepository returns a CourierRepository instance bound to the current transaction.
	CourierRepository() CourierRepository

	// StationRepository returns a StationRepository instance bound to the current transaction.
	StationRepository() StationRepository

	// TimeSlotRepository returns a TimeSlotRepository instance bound to the current transaction.
	TimeSlotRepository() TimeSlotRepository
}
