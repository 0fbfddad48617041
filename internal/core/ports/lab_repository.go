package ports

import (
	"context"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/lab"
)

// LabRepository defines the persistence contract for laboratory entities.
type LabRepository interface {
	// Add persists a new lab.
	Add(ctx context.Context, aggregate *lab.Lab) error

	// Update persists changes to an existing lab.
	Update(ctx context.Context, aggregate *lab.Lab) error

	// Get retrieves a lab by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*lab.Lab, error)

	// GetAll retrieves every registered lab.
	GetAll(ctx context.Context) ([]*lab.Lab, error)
}
