package orderrepo

import (
	"context"
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. All columns are written,
// including lifecycle fields going back to NULL.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, r.db.WithContext(ctx).Order("created_at DESC"))
}

// GetByLab retrieves the orders placed with one laboratory, newest first.
func (r *GormOrderRepository) GetByLab(ctx context.Context, labID kernel.UUID) ([]*order.Order, error) {
	if err := labID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, r.db.WithContext(ctx).
		Where("lab_id = ?", labID.Bytes()).
		Order("created_at DESC"))
}

// GetByPharmacy retrieves the orders submitted by one pharmacy, newest first.
func (r *GormOrderRepository) GetByPharmacy(ctx context.Context, pharmacyID kernel.UUID) ([]*order.Order, error) {
	if err := pharmacyID.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, r.db.WithContext(ctx).
		Where("pharmacy_id = ?", pharmacyID.Bytes()).
		Order("created_at DESC"))
}

// GetByLabAndPharmacy retrieves the orders for one lab/pharmacy pair, newest first.
func (r *GormOrderRepository) GetByLabAndPharmacy(
	ctx context.Context, labID, pharmacyID kernel.UUID,
) ([]*order.Order, error) {
	if err := errors.Join(labID.Validate(), pharmacyID.Validate()); err != nil {
		return nil, err
	}

	return r.find(ctx, r.db.WithContext(ctx).
		Where("lab_id = ? AND pharmacy_id = ?", labID.Bytes(), pharmacyID.Bytes()).
		Order("created_at DESC"))
}

// GetByStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, r.db.WithContext(ctx).
		Where("status = ?", int(status)).
		Order("created_at DESC"))
}

// Remove deletes an order permanently.
func (r *GormOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	return nil
}

func (r *GormOrderRepository) find(_ context.Context, tx *gorm.DB) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
