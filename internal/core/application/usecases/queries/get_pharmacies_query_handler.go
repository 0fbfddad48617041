package queries

import (
	"context"

	"pharmorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPharmaciesQueryHandler retrieves the pharmacy list from the database.
type GetPharmaciesQueryHandler struct {
	db *gorm.DB
}

// NewGetPharmaciesQueryHandler creates a handler for pharmacy list queries.
func NewGetPharmaciesQueryHandler(db *gorm.DB) GetPharmaciesQueryHandler {
	return GetPharmaciesQueryHandler{db: db}
}

// Handle executes the query, sorted by name.
func (h GetPharmaciesQueryHandler) Handle(
	ctx context.Context,
	query GetPharmaciesQuery,
) ([]PharmacyResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, address, created_at
		FROM pharmacies
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pharmacies := make([]PharmacyResponse, 0)
	for rows.Next() {
		var response PharmacyResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.Name, &response.Email, &response.Address, &response.CreatedAt); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		pharmacies = append(pharmacies, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pharmacies, nil
}
