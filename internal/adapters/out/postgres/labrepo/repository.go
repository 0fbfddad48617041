package labrepo

import (
	"context"
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"
	"pharmorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLabRepository implements LabRepository using GORM.
type GormLabRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLabRepository creates a new GORM lab repository.
func NewGormLabRepository(db *gorm.DB, tracker aggregateTracker) *GormLabRepository {
	return &GormLabRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lab to the database.
func (r *GormLabRepository) Add(ctx context.Context, aggregate *lab.Lab) error {
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

// Update saves an existing lab to the database.
func (r *GormLabRepository) Update(ctx context.Context, aggregate *lab.Lab) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LabDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("labId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a lab by ID.
func (r *GormLabRepository) Get(ctx context.Context, id kernel.UUID) (*lab.Lab, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LabDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("labId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered lab, sorted by name.
func (r *GormLabRepository) GetAll(ctx context.Context) ([]*lab.Lab, error) {
	var dtos []LabDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	labs := make([]*lab.Lab, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		labs = append(labs, l)
	}

	return labs, nil
}
