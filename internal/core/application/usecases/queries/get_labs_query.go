package queries

import (
	"errors"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var ErrGetLabsQueryIsNotConstructed = errors.New(
	"GetLabsQuery must be created via NewGetLabsQuery constructor",
)

// GetLabsQuery retrieves all registered labs.
type GetLabsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLabsQuery creates a parameterless query for the lab list.
func NewGetLabsQuery() GetLabsQuery {
	return GetLabsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetLabsQuery) Validate() error {
	return q.guard.Validate(ErrGetLabsQueryIsNotConstructed)
}

// LabResponse is the read model for one lab.
type LabResponse struct {
	ID        kernel.UUID
	Name      string
	CreatedAt time.Time
}
