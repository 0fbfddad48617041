// Package labrepo provides persistence for laboratory entities.
package labrepo

import (
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"

	"github.com/google/uuid"
)

// LabDTO represents the database structure for persisting labs.
type LabDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	CreatedAt time.Time `gorm:"type:timestamptz"`
	UpdatedAt time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default naming to use "labs".
func (LabDTO) TableName() string {
	return "labs"
}

func fromDomain(aggregate *lab.Lab) LabDTO {
	return LabDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto LabDTO) (*lab.Lab, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return lab.RestoreLab(id, dto.Name, dto.CreatedAt, dto.UpdatedAt)
}
