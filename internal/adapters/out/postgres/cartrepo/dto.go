// Package cartrepo persists carts. Carts belong to the cart service; this
// service reads them during placement and deletes them once an order has
// been placed.
package cartrepo

import (
	"pharmacy/internal/core/domain/model/cart"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartDTO represents the database structure for persisting carts.
// UserID is nil for anonymous carts.
type CartDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID      `gorm:"type:uuid;index"`
	TotalPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Items      []CartItemDTO   `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart position.
type CartItemDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CartID     uuid.UUID `gorm:"type:uuid;index"`
	MedicineID uuid.UUID `gorm:"type:uuid"`
	Quantity   int
}

// TableName overrides GORM's default naming convention to use "cart_items".
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	var userID *uuid.UUID
	if id := aggregate.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartID:     aggregate.ID().Bytes(),
			MedicineID: item.MedicineID().Bytes(),
			Quantity:   item.Quantity(),
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     userID,
		TotalPrice: aggregate.TotalPrice().Amount(),
		Items:      items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		medicineID, itemErr := kernel.UUIDFromBytes(itemDTO.MedicineID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := cart.NewItem(medicineID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCart(id, userID, items, totalPrice)
}
