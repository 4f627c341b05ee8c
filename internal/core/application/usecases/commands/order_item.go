package commands

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created via NewOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a placement request line: which medicine and how many units.
// Prices are not part of the request - they are always resolved from the
// catalog at placement time.
type OrderItem struct { //nolint:recvcheck //using for validation
	medicineID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewOrderItem creates a placement request line.
// The medicine ID must be valid and quantity must be positive.
func NewOrderItem(medicineID kernel.UUID, quantity int) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMedicineID(medicineID),
		item.setQuantity(quantity),
	); err != nil {
		return OrderItem{}, err
	}

	return item, nil
}

// orderItemsFromCart converts cart contents into placement request lines.
func orderItemsFromCart(items []cart.Item) ([]OrderItem, error) {
	result := make([]OrderItem, 0, len(items))
	for _, item := range items {
		orderItem, err := NewOrderItem(item.MedicineID(), item.Quantity())
		if err != nil {
			return nil, err
		}
		result = append(result, orderItem)
	}
	return result, nil
}

// Validate ensures the item was created through the constructor.
func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// MedicineID returns the requested catalog item's identifier.
func (i OrderItem) MedicineID() kernel.UUID {
	return i.medicineID
}

// Quantity returns the requested quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	i.medicineID = medicineID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
