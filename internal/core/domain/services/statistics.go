package services

import (
	"sort"
	"time"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
)

// PharmacyNameResolver maps a pharmacy identifier to a display name. It must
// always return a usable name, substituting a deterministic placeholder when
// the pharmacy record is unknown or gone.
type PharmacyNameResolver interface {
	ResolveName(pharmacyID kernel.UUID) string
}

// PharmacyBreakdown is one pharmacy's share of a lab's orders.
type PharmacyBreakdown struct {
	PharmacyID   kernel.UUID
	PharmacyName string
	OrderCount   int
}

// LabStatistics is the per-lab rollup of the order collection.
//
// TotalReferences sums the per-order distinct-code counts; a product ordered
// by two pharmacies counts twice. FirstOrderDate and LastOrderDate are nil
// when the lab has no orders.
type LabStatistics struct {
	LabID           kernel.UUID
	OrderCount      int
	FirstOrderDate  *time.Time
	LastOrderDate   *time.Time
	TotalReferences int
	TotalBoxes      int
	PharmacyCount   int
	Pharmacies      []PharmacyBreakdown
}

// StatisticsCalculator is a domain service that derives per-lab statistics
// from a slice of orders. Every call recomputes from scratch in O(orders);
// nothing is cached or incrementally maintained.
type StatisticsCalculator struct {
	resolver PharmacyNameResolver
}

// NewStatisticsCalculator creates a calculator that labels pharmacy
// breakdowns through the given resolver.
func NewStatisticsCalculator(resolver PharmacyNameResolver) StatisticsCalculator {
	return StatisticsCalculator{resolver: resolver}
}

// ForLab computes the rollup for one lab over the given orders. Orders
// belonging to other labs are ignored, so callers may pass either a
// pre-filtered slice or the whole collection.
func (s StatisticsCalculator) ForLab(labID kernel.UUID, orders []*order.Order) LabStatistics {
	stats := LabStatistics{LabID: labID}

	perPharmacy := make(map[kernel.UUID]int)
	for _, o := range orders {
		if !o.LabID().IsEqual(labID) {
			continue
		}

		stats.OrderCount++
		stats.TotalReferences += o.ReferencesCount()
		stats.TotalBoxes += o.BoxesCount()
		perPharmacy[o.PharmacyID()]++

		createdAt := o.CreatedAt()
		if stats.FirstOrderDate == nil || createdAt.Before(*stats.FirstOrderDate) {
			first := createdAt
			stats.FirstOrderDate = &first
		}
		if stats.LastOrderDate == nil || createdAt.After(*stats.LastOrderDate) {
			last := createdAt
			stats.LastOrderDate = &last
		}
	}

	stats.PharmacyCount = len(perPharmacy)
	stats.Pharmacies = s.breakdown(perPharmacy)
	return stats
}

// ForAllLabs computes a rollup for every lab that has at least one order.
func (s StatisticsCalculator) ForAllLabs(orders []*order.Order) map[kernel.UUID]LabStatistics {
	labIDs := make(map[kernel.UUID]struct{})
	for _, o := range orders {
		labIDs[o.LabID()] = struct{}{}
	}

	result := make(map[kernel.UUID]LabStatistics, len(labIDs))
	for labID := range labIDs {
		result[labID] = s.ForLab(labID, orders)
	}
	return result
}

// breakdown turns the per-pharmacy counters into named entries, sorted by
// order count descending then name, so the output is deterministic.
func (s StatisticsCalculator) breakdown(perPharmacy map[kernel.UUID]int) []PharmacyBreakdown {
	if len(perPharmacy) == 0 {
		return nil
	}

	entries := make([]PharmacyBreakdown, 0, len(perPharmacy))
	for pharmacyID, count := range perPharmacy {
		entries = append(entries, PharmacyBreakdown{
			PharmacyID:   pharmacyID,
			PharmacyName: s.resolver.ResolveName(pharmacyID),
			OrderCount:   count,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].OrderCount != entries[j].OrderCount {
			return entries[i].OrderCount > entries[j].OrderCount
		}
		return entries[i].PharmacyName < entries[j].PharmacyName
	})
	return entries
}
