package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads the acting user's order list from the database.
// Both purchase and sale sides are returned, newest first.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order list queries.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID := query.Actor().ID().String()
	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			listing_title,
			listing_image_ref,
			buyer_name,
			seller_name,
			total_amount,
			status,
			created_at
		FROM orders
		WHERE buyer_id = ? OR seller_id = ?
		ORDER BY created_at DESC
	`, userID, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUserOrdersQueryResponse
		var id uuid.UUID
		var status string
		var createdAt time.Time

		if err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.ListingTitle,
			&resp.ListingImageRef,
			&resp.BuyerName,
			&resp.SellerName,
			&resp.TotalAmount,
			&status,
			&createdAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		resp.Status = orderStatus
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
