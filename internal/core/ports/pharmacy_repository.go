package ports

import (
	"context"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/pharmacy"
)

// PharmacyRepository defines the persistence contract for pharmacy entities.
type PharmacyRepository interface {
	// Add persists a new pharmacy.
	Add(ctx context.Context, aggregate *pharmacy.Pharmacy) error

	// Update persists changes to an existing pharmacy.
	Update(ctx context.Context, aggregate *pharmacy.Pharmacy) error

	// Get retrieves a pharmacy by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pharmacy.Pharmacy, error)

	// GetAll retrieves every registered pharmacy.
	GetAll(ctx context.Context) ([]*pharmacy.Pharmacy, error)
}
