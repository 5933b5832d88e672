// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Enum values are stored under their wire names, stage timestamps are nullable
// and stamped once, and the unique index on order_number backs manual payment
// reconciliation. The version column carries the optimistic-concurrency token.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber        string    `gorm:"uniqueIndex"`
	BuyerID            uuid.UUID `gorm:"type:uuid;index"`
	BuyerName          string
	BuyerPhone         string
	SellerID           uuid.UUID `gorm:"type:uuid;index"`
	SellerName         string
	SellerAccountType  string
	ListingID          uuid.UUID `gorm:"type:uuid;index"`
	ListingTitle       string
	ListingImageRef    string
	ArticlePrice       int
	DeliveryFee        int
	Commission         int
	TotalAmount        int
	DeliveryMethod     string
	Status             string `gorm:"index"`
	TrackingNumber     string
	CancellationReason string
	DisputeReason      string
	CreatedAt          time.Time
	PaidAt             *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CompletedAt        *time.Time
	Version            int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(order *order.Order) OrderDTO {
	return OrderDTO{
		ID:                 order.ID().Bytes(),
		OrderNumber:        order.OrderNumber(),
		BuyerID:            order.BuyerID().Bytes(),
		BuyerName:          order.BuyerName(),
		BuyerPhone:         order.BuyerPhone(),
		SellerID:           order.SellerID().Bytes(),
		SellerName:         order.SellerName(),
		SellerAccountType:  order.SellerAccountType().String(),
		ListingID:          order.ListingID().Bytes(),
		ListingTitle:       order.ListingTitle(),
		ListingImageRef:    order.ListingImageRef(),
		ArticlePrice:       order.ArticlePrice(),
		DeliveryFee:        order.DeliveryFee(),
		Commission:         order.Commission(),
		TotalAmount:        order.TotalAmount(),
		DeliveryMethod:     order.DeliveryMethod().String(),
		Status:             order.Status().String(),
		TrackingNumber:     order.TrackingNumber(),
		CancellationReason: order.CancellationReason(),
		DisputeReason:      order.DisputeReason(),
		CreatedAt:          order.CreatedAt(),
		PaidAt:             order.PaidAt(),
		ShippedAt:          order.ShippedAt(),
		DeliveredAt:        order.DeliveredAt(),
		CompletedAt:        order.CompletedAt(),
		Version:            order.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the article snapshot and the full lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	listingID, err := kernel.UUIDFromBytes(dto.ListingID[:])
	if err != nil {
		return nil, err
	}

	accountType, err := account.TypeFromString(dto.SellerAccountType)
	if err != nil {
		return nil, err
	}

	deliveryMethod, err := order.DeliveryMethodFromString(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	article := order.ArticleSnapshot{
		ListingID:         listingID,
		Title:             dto.ListingTitle,
		ImageRef:          dto.ListingImageRef,
		Price:             dto.ArticlePrice,
		SellerID:          sellerID,
		SellerName:        dto.SellerName,
		SellerAccountType: accountType,
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		buyerID,
		dto.BuyerName,
		dto.BuyerPhone,
		article,
		dto.DeliveryFee,
		dto.Commission,
		dto.TotalAmount,
		deliveryMethod,
		status,
		dto.TrackingNumber,
		dto.CancellationReason,
		dto.DisputeReason,
		dto.CreatedAt,
		dto.PaidAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.CompletedAt,
		dto.Version,
	)
}
