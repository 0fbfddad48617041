package queries

import (
	"context"
	"errors"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/core/ports"
	"pharmorders/internal/pkg/errs"
)

// GetLabStatisticsQueryHandler computes the rollup for one lab. Unlike the
// list queries this goes through the order repository and the domain
// calculator: the numbers must stay consistent with the aggregate's own
// counting rules, and the per-call volume is one lab's orders.
type GetLabStatisticsQueryHandler struct {
	orderRepo ports.OrderRepository
	labRepo   ports.LabRepository
	resolver  ports.PharmacyNameResolver
}

// NewGetLabStatisticsQueryHandler creates a handler for lab statistics.
func NewGetLabStatisticsQueryHandler(
	orderRepo ports.OrderRepository,
	labRepo ports.LabRepository,
	resolver ports.PharmacyNameResolver,
) GetLabStatisticsQueryHandler {
	return GetLabStatisticsQueryHandler{
		orderRepo: orderRepo,
		labRepo:   labRepo,
		resolver:  resolver,
	}
}

// Handle recomputes the lab's statistics from its current orders. A lab id
// with no matching record still reports, under a placeholder name, so stale
// references never fail the query.
func (h GetLabStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetLabStatisticsQuery,
) (LabStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return LabStatisticsResponse{}, err
	}

	orders, err := h.orderRepo.GetByLab(ctx, query.LabID())
	if err != nil {
		return LabStatisticsResponse{}, err
	}

	calculator := services.NewStatisticsCalculator(boundResolver{ctx: ctx, resolver: h.resolver})
	stats := calculator.ForLab(query.LabID(), orders)

	labName, err := h.labName(ctx, query.LabID())
	if err != nil {
		return LabStatisticsResponse{}, err
	}

	return toLabStatisticsResponse(stats, labName), nil
}

func (h GetLabStatisticsQueryHandler) labName(ctx context.Context, labID kernel.UUID) (string, error) {
	found, err := h.labRepo.Get(ctx, labID)
	switch {
	case err == nil:
		return found.Name(), nil
	case errors.Is(err, errs.ErrObjectNotFound):
		return services.PlaceholderLabName(labID), nil
	default:
		return "", err
	}
}

// boundResolver adapts the context-aware resolver port to the domain
// calculator's context-free interface.
type boundResolver struct {
	ctx      context.Context
	resolver ports.PharmacyNameResolver
}

func (b boundResolver) ResolveName(pharmacyID kernel.UUID) string {
	return b.resolver.ResolveName(b.ctx, pharmacyID)
}

func toLabStatisticsResponse(stats services.LabStatistics, labName string) LabStatisticsResponse {
	response := LabStatisticsResponse{
		LabID:           stats.LabID,
		LabName:         labName,
		OrderCount:      stats.OrderCount,
		FirstOrderDate:  stats.FirstOrderDate,
		LastOrderDate:   stats.LastOrderDate,
		TotalReferences: stats.TotalReferences,
		TotalBoxes:      stats.TotalBoxes,
		PharmacyCount:   stats.PharmacyCount,
	}

	for _, entry := range stats.Pharmacies {
		response.Pharmacies = append(response.Pharmacies, PharmacyStatisticsResponse{
			PharmacyID:   entry.PharmacyID,
			PharmacyName: entry.PharmacyName,
			OrderCount:   entry.OrderCount,
		})
	}

	return response
}
