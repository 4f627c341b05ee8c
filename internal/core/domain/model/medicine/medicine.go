// Package medicine contains the catalog item aggregate: a medicine with its
// display name, unit price and available stock.
package medicine

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrMedicineIsNotConstructed is returned when a Medicine was not created via a factory method.
	ErrMedicineIsNotConstructed = errors.New("Medicine must be created via NewMedicine constructor")

	// ErrInsufficientStock is the sentinel for stock shortages. Use errors.Is
	// to classify; the concrete InsufficientStockError names the medicine.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports that a requested quantity exceeds the
// available stock of a specific medicine.
type InsufficientStockError struct {
	MedicineName string
	Requested    int
}

// NewInsufficientStockError creates an InsufficientStockError for the named medicine.
func NewInsufficientStockError(medicineName string, requested int) *InsufficientStockError {
	return &InsufficientStockError{MedicineName: medicineName, Requested: requested}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s (requested %d)", e.MedicineName, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Medicine is a catalog item. The catalog service owns the full product data;
// this service reads prices for snapshots and adjusts stock quantities.
type Medicine struct {
	id            kernel.UUID
	name          string
	price         kernel.Money
	stockQuantity int

	isConstructed bool
}

// NewMedicine creates a catalog item with the given price and stock.
// Name must be non-empty and stock must not be negative.
func NewMedicine(id kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Medicine, error) {
	m := &Medicine{isConstructed: true}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setPrice(price),
		m.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMedicine reconstructs a Medicine from persisted state.
func RestoreMedicine(id kernel.UUID, name string, price kernel.Money, stockQuantity int) (*Medicine, error) {
	return NewMedicine(id, name, price, stockQuantity)
}

// Validate ensures the Medicine was created through a factory method.
func (m *Medicine) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMedicineIsNotConstructed
	}
	return nil
}

// ID returns the medicine's unique identifier.
func (m *Medicine) ID() kernel.UUID {
	return m.id
}

// Name returns the display name.
func (m *Medicine) Name() string {
	return m.name
}

// Price returns the current unit price.
func (m *Medicine) Price() kernel.Money {
	return m.price
}

// StockQuantity returns the available quantity.
func (m *Medicine) StockQuantity() int {
	return m.stockQuantity
}

// HasStock reports whether the requested quantity is available.
func (m *Medicine) HasStock(quantity int) bool {
	return quantity > 0 && m.stockQuantity >= quantity
}

func (m *Medicine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Medicine) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Medicine) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *Medicine) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	m.stockQuantity = stockQuantity
	return nil
}
