package queries

import (
	"context"
	"sort"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/services"
	"pharmorders/internal/core/ports"
)

// GetAllLabsStatisticsQueryHandler computes the rollup for every lab with
// orders. Labs without a matching record are reported under a placeholder
// name.
type GetAllLabsStatisticsQueryHandler struct {
	orderRepo ports.OrderRepository
	labRepo   ports.LabRepository
	resolver  ports.PharmacyNameResolver
}

// NewGetAllLabsStatisticsQueryHandler creates a handler for the all-labs
// statistics query.
func NewGetAllLabsStatisticsQueryHandler(
	orderRepo ports.OrderRepository,
	labRepo ports.LabRepository,
	resolver ports.PharmacyNameResolver,
) GetAllLabsStatisticsQueryHandler {
	return GetAllLabsStatisticsQueryHandler{
		orderRepo: orderRepo,
		labRepo:   labRepo,
		resolver:  resolver,
	}
}

// Handle recomputes statistics over the whole order collection. The result
// is sorted by lab name for stable output.
func (h GetAllLabsStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetAllLabsStatisticsQuery,
) ([]LabStatisticsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	labNames, err := h.labNames(ctx)
	if err != nil {
		return nil, err
	}

	calculator := services.NewStatisticsCalculator(boundResolver{ctx: ctx, resolver: h.resolver})
	perLab := calculator.ForAllLabs(orders)

	responses := make([]LabStatisticsResponse, 0, len(perLab))
	for labID, stats := range perLab {
		name, known := labNames[labID]
		if !known {
			name = services.PlaceholderLabName(labID)
		}
		responses = append(responses, toLabStatisticsResponse(stats, name))
	}

	sort.Slice(responses, func(i, j int) bool {
		return responses[i].LabName < responses[j].LabName
	})
	return responses, nil
}

func (h GetAllLabsStatisticsQueryHandler) labNames(ctx context.Context) (map[kernel.UUID]string, error) {
	labs, err := h.labRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[kernel.UUID]string, len(labs))
	for _, l := range labs {
		names[l.ID()] = l.Name()
	}
	return names, nil
}
