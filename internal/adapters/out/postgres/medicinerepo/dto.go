// Package medicinerepo persists catalog items. Stock mutations are
// conditional SQL updates so that concurrent placements can never drive the
// stock below zero.
package medicinerepo

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MedicineDTO represents the database structure for persisting catalog items.
type MedicineDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"index"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockQuantity int
}

// TableName overrides GORM's default naming convention to use "medicines".
func (MedicineDTO) TableName() string {
	return "medicines"
}

// fromDomain converts a medicine domain aggregate to its database representation.
func fromDomain(aggregate *medicine.Medicine) MedicineDTO {
	return MedicineDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price().Amount(),
		StockQuantity: aggregate.StockQuantity(),
	}
}

// toDomain converts a database DTO to a medicine domain aggregate.
func toDomain(dto MedicineDTO) (*medicine.Medicine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return medicine.RestoreMedicine(id, dto.Name, price, dto.StockQuantity)
}
