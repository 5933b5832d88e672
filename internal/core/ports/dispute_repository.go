package ports

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
)

// DisputeRepository defines the persistence contract for dispute aggregates.
type DisputeRepository interface {
	// Add persists a new dispute aggregate to storage.
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// Update persists changes to an existing dispute aggregate, bumping its
	// version. Fails with a version error on a concurrent modification.
	Update(ctx context.Context, aggregate *dispute.Dispute) error

	// Get retrieves a dispute aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*dispute.Dispute, error)
}
