package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler reads one order's full detail from the database.
// Access is limited to the order's buyer, its seller and operators.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for order detail queries.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (GetOrderByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			buyer_id,
			buyer_name,
			buyer_phone,
			seller_id,
			seller_name,
			listing_id,
			listing_title,
			listing_image_ref,
			article_price,
			delivery_fee,
			commission,
			total_amount,
			delivery_method,
			status,
			tracking_number,
			cancellation_reason,
			dispute_reason,
			created_at,
			paid_at,
			shipped_at,
			delivered_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var resp GetOrderByIDQueryResponse
	var id, buyerID, sellerID, listingID uuid.UUID
	var deliveryMethod, status string
	var paidAt, shippedAt, deliveredAt, completedAt sql.NullTime

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&buyerID,
		&resp.BuyerName,
		&resp.BuyerPhone,
		&sellerID,
		&resp.SellerName,
		&listingID,
		&resp.ListingTitle,
		&resp.ListingImageRef,
		&resp.ArticlePrice,
		&resp.DeliveryFee,
		&resp.Commission,
		&resp.TotalAmount,
		&deliveryMethod,
		&status,
		&resp.TrackingNumber,
		&resp.CancellationReason,
		&resp.DisputeReason,
		&resp.CreatedAt,
		&paidAt,
		&shippedAt,
		&deliveredAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByIDQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.ListingID, err = kernel.UUIDFromBytes(listingID[:]); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	actor := query.Actor()
	if !actor.Is(resp.BuyerID) && !actor.Is(resp.SellerID) && !actor.IsAdmin() {
		return GetOrderByIDQueryResponse{}, errs.NewPermissionDeniedError("get order")
	}

	if resp.DeliveryMethod, err = order.DeliveryMethodFromString(deliveryMethod); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return GetOrderByIDQueryResponse{}, err
	}

	resp.PaidAt = nullableTime(paidAt)
	resp.ShippedAt = nullableTime(shippedAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.CompletedAt = nullableTime(completedAt)

	return resp, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
