package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingConfirmationOrdersQueryHandler reads the operator confirmation
// queue from the database. Operator-only: the queue exposes buyer contact data.
type GetPendingConfirmationOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingConfirmationOrdersQueryHandler creates a handler for confirmation queue queries.
func NewGetPendingConfirmationOrdersQueryHandler(db *gorm.DB) GetPendingConfirmationOrdersQueryHandler {
	return GetPendingConfirmationOrdersQueryHandler{db: db}
}

// Handle executes the query. Oldest reports come first so they are confirmed
// in the order the transfers were made.
func (h GetPendingConfirmationOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingConfirmationOrdersQuery,
) ([]GetPendingConfirmationOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin() {
		return nil, errs.NewPermissionDeniedError("get pending confirmation orders")
	}

	orders := make([]GetPendingConfirmationOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			buyer_name,
			buyer_phone,
			total_amount,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.PaymentConfirming.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingConfirmationOrdersQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.BuyerName,
			&resp.BuyerPhone,
			&resp.TotalAmount,
			&createdAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
