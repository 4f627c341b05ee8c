package medicinerepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/medicine"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMedicineRepository implements MedicineRepository using GORM.
type GormMedicineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMedicineRepository creates a new GORM medicine repository.
func NewGormMedicineRepository(db *gorm.DB, tracker aggregateTracker) *GormMedicineRepository {
	return &GormMedicineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item. Catalog management lives in another service;
// this method exists for seeding and tests.
func (r *GormMedicineRepository) Add(ctx context.Context, aggregate *medicine.Medicine) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a medicine by ID.
func (r *GormMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MedicineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("medicine", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DecrementStock atomically reduces the available stock by quantity. The
// update only matches rows with enough stock left, so the check and the
// decrement are a single statement and concurrent placements serialize on
// the row lock instead of overselling.
func (r *GormMedicineRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MedicineDTO{}).
		Where("id = ? AND stock_quantity >= ?", id.Bytes(), quantity).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Either the medicine is missing or the stock ran out; re-read to
		// tell the two apart.
		existing, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		return medicine.NewInsufficientStockError(existing.Name(), quantity)
	}

	return nil
}

// IncrementStock returns quantity units to the available stock.
func (r *GormMedicineRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&MedicineDTO{}).
		Where("id = ?", id.Bytes()).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("medicine", id.String())
	}

	return nil
}
