// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pharmorders/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PharmacyRepoFactory provides access to the pharmacy repository within a transaction.
	PharmacyRepoFactory interface {
		PharmacyRepository() ports.PharmacyRepository
	}

	// LabRepoFactory provides access to the lab repository within a transaction.
	LabRepoFactory interface {
		LabRepository() ports.LabRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PharmacyUoW manages transactions for pharmacy-only operations.
	PharmacyUoW interface {
		TxManager
		PharmacyRepoFactory
	}

	// PharmacyUoWFactory creates new pharmacy unit of work instances.
	PharmacyUoWFactory interface {
		Create() PharmacyUoW
	}

	// LabUoW manages transactions for lab-only operations.
	LabUoW interface {
		TxManager
		LabRepoFactory
	}

	// LabUoWFactory creates new lab unit of work instances.
	LabUoWFactory interface {
		Create() LabUoW
	}

	// UoW manages transactions spanning orders and the reference entities.
	// Used by commands that read labs and pharmacies while writing orders.
	UoW interface {
		TxManager
		OrderRepoFactory
		PharmacyRepoFactory
		LabRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
