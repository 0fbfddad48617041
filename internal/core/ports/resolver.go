package ports

import (
	"context"

	"pharmorders/internal/core/domain/model/kernel"
)

// PharmacyNameResolver resolves pharmacy identifiers to display names.
// Implementations must return a deterministic placeholder for identifiers
// with no matching pharmacy record, never an error.
type PharmacyNameResolver interface {
	ResolveName(ctx context.Context, pharmacyID kernel.UUID) string
}
