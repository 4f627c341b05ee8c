package order

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one position of an order: a medicine reference, the ordered
// quantity and the unit price captured at placement time. The captured price
// is a snapshot - it never changes after the order is created, even if the
// catalog price changes later.
//
// LineItem is an immutable value object.
type LineItem struct { //nolint:recvcheck //using for validation
	medicineID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item with a snapshot of the medicine's current
// unit price. Quantity must be positive and both the medicine ID and the
// price must be valid.
func NewLineItem(medicineID kernel.UUID, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMedicineID(medicineID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// MedicineID returns the referenced catalog item's identifier.
func (i LineItem) MedicineID() kernel.UUID {
	return i.medicineID
}

// Quantity returns the ordered quantity.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price snapshot captured at placement time.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unit price multiplied by quantity.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

func (i *LineItem) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}
	i.medicineID = medicineID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
