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

// GetOpenDisputesQueryHandler reads the active case queue from the database.
// Operator-only.
type GetOpenDisputesQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenDisputesQueryHandler creates a handler for active case queries.
func NewGetOpenDisputesQueryHandler(db *gorm.DB) GetOpenDisputesQueryHandler {
	return GetOpenDisputesQueryHandler{db: db}
}

// Handle executes the query. Oldest cases come first so they are worked in
// arrival order.
func (h GetOpenDisputesQueryHandler) Handle(
	ctx context.Context,
	query GetOpenDisputesQuery,
) ([]GetOpenDisputesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewPermissionDeniedError("get open disputes")
	}

	disputes := make([]GetOpenDisputesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			order_number,
			article_title,
			amount,
			buyer_name,
			seller_name,
			reason,
			status,
			opened_at
		FROM disputes
		WHERE status IN (?, ?)
		ORDER BY opened_at
	`, dispute.Open.String(), dispute.Investigating.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenDisputesQueryResponse
		var id, orderID uuid.UUID
		var reason, status string
		var openedAt time.Time

		if err = rows.Scan(
			&id,
			&orderID,
			&resp.OrderNumber,
			&resp.ArticleTitle,
			&resp.Amount,
			&resp.BuyerName,
			&resp.SellerName,
			&reason,
			&status,
			&openedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.Reason, err = dispute.ReasonFromString(reason); err != nil {
			return nil, err
		}
		if resp.Status, err = dispute.StatusFromString(status); err != nil {
			return nil, err
		}
		resp.OpenedAt = openedAt

		disputes = append(disputes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return disputes, nil
}
