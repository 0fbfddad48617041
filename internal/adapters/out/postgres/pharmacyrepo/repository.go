package pharmacyrepo

import (
	"context"
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/pharmacy"
	"pharmorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPharmacyRepository implements PharmacyRepository using GORM.
type GormPharmacyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPharmacyRepository creates a new GORM pharmacy repository.
func NewGormPharmacyRepository(db *gorm.DB, tracker aggregateTracker) *GormPharmacyRepository {
	return &GormPharmacyRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pharmacy to the database.
func (r *GormPharmacyRepository) Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
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

// Update saves an existing pharmacy to the database.
func (r *GormPharmacyRepository) Update(ctx context.Context, aggregate *pharmacy.Pharmacy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PharmacyDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pharmacyId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a pharmacy by ID.
func (r *GormPharmacyRepository) Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PharmacyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pharmacyId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered pharmacy, sorted by name.
func (r *GormPharmacyRepository) GetAll(ctx context.Context) ([]*pharmacy.Pharmacy, error) {
	var dtos []PharmacyDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	pharmacies := make([]*pharmacy.Pharmacy, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pharmacies = append(pharmacies, p)
	}

	return pharmacies, nil
}
