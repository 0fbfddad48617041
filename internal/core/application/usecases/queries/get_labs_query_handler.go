package queries

import (
	"context"

	"pharmorders/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLabsQueryHandler retrieves the lab list from the database.
type GetLabsQueryHandler struct {
	db *gorm.DB
}

// NewGetLabsQueryHandler creates a handler for lab list queries.
func NewGetLabsQueryHandler(db *gorm.DB) GetLabsQueryHandler {
	return GetLabsQueryHandler{db: db}
}

// Handle executes the query, sorted by name.
func (h GetLabsQueryHandler) Handle(
	ctx context.Context,
	query GetLabsQuery,
) ([]LabResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, created_at
		FROM labs
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	labs := make([]LabResponse, 0)
	for rows.Next() {
		var response LabResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &response.Name, &response.CreatedAt); err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		labs = append(labs, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return labs, nil
}
