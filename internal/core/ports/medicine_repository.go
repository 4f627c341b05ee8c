package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
)

// MedicineRepository defines the persistence contract for catalog items.
// Stock mutations are conditional at the storage level so that concurrent
// placements can never oversell an item.
type MedicineRepository interface {
	// Get retrieves a medicine by its unique identifier.
	// Returns an ObjectNotFoundError if the medicine does not exist.
	Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error)

	// DecrementStock atomically reduces the available stock by quantity,
	// but only if at least that much stock remains. Returns an
	// InsufficientStockError when the condition fails and an
	// ObjectNotFoundError when the medicine does not exist.
	DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error

	// IncrementStock returns quantity units to the available stock.
	// Used to compensate cancelled orders.
	IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error
}
