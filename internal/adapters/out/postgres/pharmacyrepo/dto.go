// Package pharmacyrepo provides persistence for pharmacy entities.
package pharmacyrepo

import (
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/pharmacy"

	"github.com/google/uuid"
)

// PharmacyDTO represents the database structure for persisting pharmacies.
type PharmacyDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time `gorm:"type:timestamptz"`
	UpdatedAt time.Time `gorm:"type:timestamptz"`
}

// TableName overrides GORM's default naming to use "pharmacies".
func (PharmacyDTO) TableName() string {
	return "pharmacies"
}

func fromDomain(aggregate *pharmacy.Pharmacy) PharmacyDTO {
	return PharmacyDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Address:   aggregate.Address(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto PharmacyDTO) (*pharmacy.Pharmacy, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pharmacy.RestorePharmacy(id, dto.Name, dto.Email, dto.Address, dto.CreatedAt, dto.UpdatedAt)
}
