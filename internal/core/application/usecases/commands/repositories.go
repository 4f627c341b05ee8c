// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pharmacy/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// MedicineRepoFactory provides access to the medicine repository within a transaction.
	MedicineRepoFactory interface {
		MedicineRepository() ports.MedicineRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderStockUoW manages transactions spanning orders and catalog stock.
	// Used by cancellation, which restores stock in the same transaction
	// as the status change.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		MedicineRepoFactory
	}

	// OrderStockUoWFactory creates new order/stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// PlacementUoW manages transactions spanning orders, carts and catalog
	// stock. Used by the order placement flows, where stock decrements, the
	// new order and the cart deletion must commit or roll back together.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		CartRepoFactory
		MedicineRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}
)
