package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"
)

// ListingRepository defines the persistence contract for listing aggregates.
// Checkout loads the listing, consumes one unit of stock and writes it back
// inside the same transaction as the new order.
type ListingRepository interface {
	// Add persists a new listing aggregate to storage.
	Add(ctx context.Context, aggregate *listing.Listing) error

	// Update persists changes to an existing listing aggregate, bumping its
	// version. Fails with a version error on a concurrent modification.
	Update(ctx context.Context, aggregate *listing.Listing) error

	// Get retrieves a listing aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error)
}
