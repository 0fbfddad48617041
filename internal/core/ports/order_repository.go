package ports

import (
	"context"

	"pharmorders/internal/core/domain/model/kernel"
	"pharmorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by the
// parties involved and by lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByLab retrieves the orders placed with one laboratory, newest first.
	GetByLab(ctx context.Context, labID kernel.UUID) ([]*order.Order, error)

	// GetByPharmacy retrieves the orders submitted by one pharmacy, newest first.
	GetByPharmacy(ctx context.Context, pharmacyID kernel.UUID) ([]*order.Order, error)

	// GetByLabAndPharmacy retrieves the orders for one lab/pharmacy pair, newest first.
	GetByLabAndPharmacy(ctx context.Context, labID, pharmacyID kernel.UUID) ([]*order.Order, error)

	// GetByStatus retrieves all orders currently in the given status.
	GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Remove deletes an order permanently. Removing an unknown id is an error.
	Remove(ctx context.Context, id kernel.UUID) error
}
