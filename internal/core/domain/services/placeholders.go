package services

import (
	"fmt"

	"pharmorders/internal/core/domain/model/kernel"
)

// PlaceholderPharmacyName returns the deterministic display name used when a
// pharmacy record cannot be found for an identifier.
func PlaceholderPharmacyName(pharmacyID kernel.UUID) string {
	return fmt.Sprintf("Pharmacy %s", pharmacyID.String()[:8])
}

// PlaceholderLabName returns the deterministic display name used when a lab
// record cannot be found for an identifier.
func PlaceholderLabName(labID kernel.UUID) string {
	return fmt.Sprintf("Lab %s", labID.String()[:8])
}
