// Package listingrepo provides data transfer objects and mapping functions for listing persistence.
// This package implements the repository pattern for the listing domain aggregate, handling
// the conversion between domain entities and database representations.
package listingrepo

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/listing"

	"github.com/google/uuid"
)

// ListingDTO represents the database structure for persisting listing aggregates.
// The version column carries the optimistic-concurrency token checked on every update.
type ListingDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title             string
	Price             int
	Quantity          int
	InitialQuantity   int
	IsAvailable       bool      `gorm:"index"`
	SellerID          uuid.UUID `gorm:"type:uuid;index"`
	SellerName        string
	SellerAccountType string
	ImageRef          string
	Version           int
}

// TableName specifies the database table name for listing entities.
// Overrides GORM's default naming convention to use "listings".
func (ListingDTO) TableName() string {
	return "listings"
}

// fromDomain converts a listing domain aggregate to its database representation.
func fromDomain(listing *listing.Listing) ListingDTO {
	return ListingDTO{
		ID:                listing.ID().Bytes(),
		Title:             listing.Title(),
		Price:             listing.Price(),
		Quantity:          listing.Quantity(),
		InitialQuantity:   listing.InitialQuantity(),
		IsAvailable:       listing.IsAvailable(),
		SellerID:          listing.SellerID().Bytes(),
		SellerName:        listing.SellerName(),
		SellerAccountType: listing.SellerAccountType().String(),
		ImageRef:          listing.ImageRef(),
		Version:           listing.Version(),
	}
}

// toDomain converts a database DTO to a listing domain aggregate.
// Reconstructs the complete aggregate including remaining stock using RestoreListing.
func toDomain(dto ListingDTO) (*listing.Listing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	accountType, err := account.TypeFromString(dto.SellerAccountType)
	if err != nil {
		return nil, err
	}

	return listing.RestoreListing(
		id,
		dto.Title,
		dto.Price,
		dto.Quantity,
		dto.InitialQuantity,
		sellerID,
		dto.SellerName,
		accountType,
		dto.ImageRef,
		dto.Version,
	)
}
