// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
	"pharmorders/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally filtered by lab, pharmacy
// and/or status. All filters are combined with AND; nil means no filter.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(&labID, nil, nil)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	labID      *kernel.UUID
	pharmacyID *kernel.UUID
	status     *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list. Each filter may be
// nil; non-nil filters are validated.
func NewGetOrdersQuery(labID, pharmacyID *kernel.UUID, status *order.Status) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		labID:      labID,
		pharmacyID: pharmacyID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}

	if labID != nil {
		if err := labID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if pharmacyID != nil {
		if err := pharmacyID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// LabID returns the lab filter, or nil.
func (q GetOrdersQuery) LabID() *kernel.UUID {
	return q.labID
}

// PharmacyID returns the pharmacy filter, or nil.
func (q GetOrdersQuery) PharmacyID() *kernel.UUID {
	return q.pharmacyID
}

// Status returns the status filter, or nil.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OrderSummaryResponse is the list read model for one order. The parsed
// line items are omitted from list views; use GetOrderQuery for the detail.
type OrderSummaryResponse struct {
	ID                   kernel.UUID
	LabID                kernel.UUID
	PharmacyID           kernel.UUID
	PharmacyName         string
	FileName             string
	CreatedAt            time.Time
	Status               string
	ReferencesCount      int
	BoxesCount           int
	ReviewedAt           *time.Time
	ReviewedBy           string
	ReviewNote           string
	ExpectedDeliveryDate *time.Time
	DeliveredAt          *time.Time
}
