package postgres

import (
	"context"
	"log/slog"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/services"

	"gorm.io/gorm"
)

// GormPharmacyNameResolver resolves pharmacy display names straight from the
// database. Identifiers without a matching row resolve to the deterministic
// placeholder; lookup failures are logged and degrade to the placeholder as
// well, never to an error.
type GormPharmacyNameResolver struct {
	db *gorm.DB
}

// NewGormPharmacyNameResolver creates a resolver backed by the given connection.
func NewGormPharmacyNameResolver(db *gorm.DB) *GormPharmacyNameResolver {
	return &GormPharmacyNameResolver{db: db}
}

// ResolveName returns the pharmacy's name, or a placeholder when unknown.
func (r *GormPharmacyNameResolver) ResolveName(ctx context.Context, pharmacyID kernel.UUID) string {
	var name string
	err := r.db.WithContext(ctx).
		Raw("SELECT name FROM pharmacies WHERE id = ?", pharmacyID.Bytes()).
		Scan(&name).Error
	if err != nil {
		slog.Warn("pharmacy name lookup failed",
			"pharmacyId", pharmacyID.String(), "error", err)
		return services.PlaceholderPharmacyName(pharmacyID)
	}

	if name == "" {
		return services.PlaceholderPharmacyName(pharmacyID)
	}
	return name
}
