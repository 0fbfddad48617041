package queries

import (
	"errors"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/pkg/guard"
)

var ErrGetLabStatisticsQueryIsNotConstructed = errors.New(
	"GetLabStatisticsQuery must be created via NewGetLabStatisticsQuery constructor",
)

// GetLabStatisticsQuery retrieves the order rollup for one laboratory.
type GetLabStatisticsQuery struct {
	labID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLabStatisticsQuery creates a query for one lab's statistics.
func NewGetLabStatisticsQuery(labID kernel.UUID) (GetLabStatisticsQuery, error) {
	if err := labID.Validate(); err != nil {
		return GetLabStatisticsQuery{}, err
	}

	return GetLabStatisticsQuery{
		labID: labID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLabStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetLabStatisticsQueryIsNotConstructed)
}

// LabID returns the identifier of the lab to report on.
func (q GetLabStatisticsQuery) LabID() kernel.UUID {
	return q.labID
}

// PharmacyStatisticsResponse is one pharmacy's share of a lab's orders.
type PharmacyStatisticsResponse struct {
	PharmacyID   kernel.UUID
	PharmacyName string
	OrderCount   int
}

// LabStatisticsResponse is the read model for one lab's rollup. A lab with
// no orders reports zero counts and nil dates.
type LabStatisticsResponse struct {
	LabID           kernel.UUID
	LabName         string
	OrderCount      int
	FirstOrderDate  *time.Time
	LastOrderDate   *time.Time
	TotalReferences int
	TotalBoxes      int
	PharmacyCount   int
	Pharmacies      []PharmacyStatisticsResponse
}
