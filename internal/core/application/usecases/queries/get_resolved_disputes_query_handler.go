package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetResolvedDisputesQueryHandler reads the decided case archive from the
// database. Operator-only.
type GetResolvedDisputesQueryHandler struct {
	db *gorm.DB
}

// NewGetResolvedDisputesQueryHandler creates a handler for decided case queries.
func NewGetResolvedDisputesQueryHandler(db *gorm.DB) GetResolvedDisputesQueryHandler {
	return GetResolvedDisputesQueryHandler{db: db}
}

// Handle executes the query, newest decisions first.
func (h GetResolvedDisputesQueryHandler) Handle(
	ctx context.Context,
	query GetResolvedDisputesQuery,
) ([]GetResolvedDisputesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewPermissionDeniedError("get resolved disputes")
	}

	disputes := make([]GetResolvedDisputesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			article_title,
			amount,
			buyer_name,
			seller_name,
			status,
			resolution_type,
			resolution_amount,
			resolved_at
		FROM disputes
		WHERE status IN (?, ?, ?, ?)
		ORDER BY resolved_at DESC
	`,
		dispute.ResolvedRefund.String(), dispute.ResolvedBuyer.String(),
		dispute.ResolvedSeller.String(), dispute.Closed.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetResolvedDisputesQueryResponse
		var id uuid.UUID
		var status, resolutionType string
		var decidedAt time.Time

		if err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.ArticleTitle,
			&resp.Amount,
			&resp.BuyerName,
			&resp.SellerName,
			&status,
			&resolutionType,
			&resp.ResolutionAmount,
			&decidedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = dispute.StatusFromString(status); err != nil {
			return nil, err
		}
		if resp.ResolutionType, err = dispute.ResolutionTypeFromString(resolutionType); err != nil {
			return nil, err
		}
		resp.DecidedAt = decidedAt

		disputes = append(disputes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return disputes, nil
}
