package ports

import (
	"context"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes to an existing order aggregate.
	// Line items and the total are immutable and are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetPendingCreatedBefore retrieves all orders still in Pending status
	// that were placed before the cutoff. Used by the stale-order sweep.
	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
