// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pickpoint/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RechargeRepoFactory provides access to the recharge repository within a transaction.
	RechargeRepoFactory interface {
		RechargeRepository() ports.RechargeRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ReferenceRepoFactory provides access to station and time slot lookups within a transaction.
	ReferenceRepoFactory interface {
		StationRepository() ports.StationRepository
		TimeSlotRepository() ports.TimeSlotRepository
	}

	// CreateOrderUoW manages transactions for order creation.
	// Creation touches the order, the payer's balance, reference data and
	// the courier pool, all of which must commit or roll back together.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		CourierRepoFactory
		ReferenceRepoFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderStatusUoW manages transactions for order status changes.
	// Cancellation refunds the payer, so the user repository rides along.
	OrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderStatusUoWFactory creates new order status unit of work instances.
	OrderStatusUoWFactory interface {
		Create() OrderStatusUoW
	}

	// RechargeUoW manages transactions for recharge operations.
	// Confirmation grants credits, so the user repository rides along.
	RechargeUoW interface {
		TxManager
		RechargeRepoFactory
		UserRepoFactory
	}

	// RechargeUoWFactory creates new recharge unit of work instances.
	RechargeUoWFactory interface {
		Create() RechargeUoW
	}

	// AssignUoW manages transactions for courier backfill.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// AssignUoWFactory creates new backfill unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}
)
