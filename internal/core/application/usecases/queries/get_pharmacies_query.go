package queries

import (
	"errors"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var ErrGetPharmaciesQueryIsNotConstructed = errors.New(
	"GetPharmaciesQuery must be created via NewGetPharmaciesQuery constructor",
)

// GetPharmaciesQuery retrieves all registered pharmacies.
type GetPharmaciesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPharmaciesQuery creates a parameterless query for the pharmacy list.
func NewGetPharmaciesQuery() GetPharmaciesQuery {
	return GetPharmaciesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPharmaciesQuery) Validate() error {
	return q.guard.Validate(ErrGetPharmaciesQueryIsNotConstructed)
}

// PharmacyResponse is the read model for one pharmacy.
type PharmacyResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
}
