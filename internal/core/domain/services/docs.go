// Package services contains stateless domain services that operate across
// aggregates or on raw input.
//
// CSVLineItemParser validates uploaded delimited text into order line items,
// accumulating per-row warnings instead of failing the whole file.
// StatisticsCalculator derives per-lab order rollups on demand.
package services
