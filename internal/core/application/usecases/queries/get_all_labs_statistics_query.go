package queries

import (
	"errors"

	"pharmorders/internal/pkg/guard"
)

var ErrGetAllLabsStatisticsQueryIsNotConstructed = errors.New(
	"GetAllLabsStatisticsQuery must be created via NewGetAllLabsStatisticsQuery constructor",
)

// GetAllLabsStatisticsQuery retrieves the rollup for every lab that has at
// least one order.
type GetAllLabsStatisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLabsStatisticsQuery creates a parameterless query for the
// statistics of all labs.
func NewGetAllLabsStatisticsQuery() GetAllLabsStatisticsQuery {
	return GetAllLabsStatisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllLabsStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLabsStatisticsQueryIsNotConstructed)
}
