// Package cart contains the transient Cart aggregate. A cart holds what a
// user intends to buy; it carries no price snapshots and is deleted in the
// same transaction as a successful order placement.
package cart

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart was not created via RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via RestoreCart constructor")

// Item is a single cart position: a medicine reference and a quantity.
// Prices are not captured here - they are resolved from the catalog at
// placement time.
type Item struct {
	medicineID kernel.UUID
	quantity   int
}

// NewItem creates a cart item. Quantity must be positive.
func NewItem(medicineID kernel.UUID, quantity int) (Item, error) {
	if err := medicineID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{medicineID: medicineID, quantity: quantity}, nil
}

// MedicineID returns the referenced catalog item's identifier.
func (i Item) MedicineID() kernel.UUID {
	return i.medicineID
}

// Quantity returns the desired quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Cart is a user's shopping cart. Carts may be anonymous (no owning user),
// in which case they are only reachable by their own identifier.
//
// The stored total is kept for display purposes only; order placement always
// recomputes the total from current catalog prices.
type Cart struct {
	id         kernel.UUID
	userID     *kernel.UUID
	items      []Item
	totalPrice kernel.Money

	isConstructed bool
}

// RestoreCart reconstructs a Cart from persisted state. The cart service owns
// cart creation; this service only reads and deletes carts.
func RestoreCart(id kernel.UUID, userID *kernel.UUID, items []Item, totalPrice kernel.Money) (*Cart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := totalPrice.Validate(); err != nil {
		return nil, err
	}

	restored := &Cart{
		id:            id,
		userID:        userID,
		totalPrice:    totalPrice,
		isConstructed: true,
	}
	restored.items = make([]Item, len(items))
	copy(restored.items, items)

	return restored, nil
}

// Validate ensures the Cart was created through RestoreCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user's identifier, or nil for anonymous carts.
func (c *Cart) UserID() *kernel.UUID {
	return c.userID
}

// Items returns a copy of the cart's items.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the stored display total. Never used for order totals.
func (c *Cart) TotalPrice() kernel.Money {
	return c.totalPrice
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}
