// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, capability checks,
// transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
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

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DisputeRepoFactory provides access to the dispute repository within a transaction.
	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle commands that modify a single order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions spanning listing and order aggregates.
	// Checkout consumes stock and creates the order atomically.
	CheckoutUoW interface {
		TxManager
		ListingRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// DisputeUoW manages transactions for dispute-only operations.
	DisputeUoW interface {
		TxManager
		DisputeRepoFactory
	}

	// DisputeUoWFactory creates new dispute unit of work instances.
	DisputeUoWFactory interface {
		Create() DisputeUoW
	}

	// CaseUoW manages transactions spanning dispute and order aggregates.
	// Opening a case freezes the order; resolving one settles it. Both sides
	// must land in the same transaction.
	CaseUoW interface {
		TxManager
		DisputeRepoFactory
		OrderRepoFactory
	}

	// CaseUoWFactory creates new case unit of work instances.
	CaseUoWFactory interface {
		Create() CaseUoW
	}
)
