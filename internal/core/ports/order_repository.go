package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Update implementations must perform an optimistic-concurrency check: the
// write succeeds only if the stored version still matches the version the
// aggregate was loaded with, and fails with a version error otherwise.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order number is unique across all orders; adding a duplicate fails.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, bumping its
	// version. Fails with a version error on a concurrent modification.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
