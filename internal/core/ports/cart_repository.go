package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for carts. Carts are owned
// by the cart service; this service only reads them and deletes them once an
// order has been placed from their contents.
type CartRepository interface {
	// Get retrieves a cart by its own identifier.
	// Returns an ObjectNotFoundError if no such cart exists.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetByUserID retrieves the cart owned by the given user.
	// Returns an ObjectNotFoundError if the user has no cart.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Delete removes a cart and its items by cart identifier.
	Delete(ctx context.Context, id kernel.UUID) error
}
