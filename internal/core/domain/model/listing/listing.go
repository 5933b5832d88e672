// Package listing provides the Listing aggregate: a sellable article with a
// price, a stock quantity and a derived availability flag.
//
// Key business rules:
//   - Price must lie within the platform bounds (500 to 500000 FCFA)
//   - Quantity never drops below zero; a decrement on an empty listing floors at zero
//   - IsAvailable is always quantity > 0
//   - Stock is decremented exactly once per successful order creation;
//     no restock operation exists anywhere, including on cancellation
package listing

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Platform price bounds in FCFA.
const (
	MinPrice = 500
	MaxPrice = 500000
)

var (
	// ErrListingIsNotConstructed is returned when a Listing was not created
	// through NewListing or RestoreListing.
	ErrListingIsNotConstructed = errors.New("Listing must be created via NewListing constructor")
)

// Listing is the aggregate root for a published article. The seller identity
// fields are a snapshot taken at publish time; orders copy from them rather
// than referencing the seller's account live.
type Listing struct {
	id                kernel.UUID
	title             string
	price             int
	quantity          int
	initialQuantity   int
	isAvailable       bool
	sellerID          kernel.UUID
	sellerName        string
	sellerAccountType account.Type
	imageRef          string
	version           int

	isConstructed bool
}

// NewListing creates a published listing with its full initial stock.
func NewListing(
	id kernel.UUID,
	title string,
	price int,
	quantity int,
	sellerID kernel.UUID,
	sellerName string,
	sellerAccountType account.Type,
	imageRef string,
) (*Listing, error) {
	l := &Listing{
		imageRef:      imageRef,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setTitle(title),
		l.setPrice(price),
		l.setQuantity(quantity),
		l.setSeller(sellerID, sellerName, sellerAccountType),
	); err != nil {
		return nil, err
	}

	l.initialQuantity = quantity
	l.isAvailable = quantity > 0
	return l, nil
}

// RestoreListing reconstructs a listing from persistence, including its
// remaining stock and optimistic-concurrency version.
func RestoreListing(
	id kernel.UUID,
	title string,
	price int,
	quantity int,
	initialQuantity int,
	sellerID kernel.UUID,
	sellerName string,
	sellerAccountType account.Type,
	imageRef string,
	version int,
) (*Listing, error) {
	l, err := NewListing(id, title, price, initialQuantity, sellerID, sellerName, sellerAccountType, imageRef)
	if err != nil {
		return nil, err
	}

	if quantity < 0 || quantity > initialQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, initialQuantity)
	}

	l.quantity = quantity
	l.isAvailable = quantity > 0
	l.version = version
	return l, nil
}

// Validate ensures the Listing was created through a constructor.
func (l *Listing) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrListingIsNotConstructed
	}
	return nil
}

// ID returns the listing's unique identifier.
func (l *Listing) ID() kernel.UUID {
	return l.id
}

// Title returns the article title.
func (l *Listing) Title() string {
	return l.title
}

// Price returns the article price in FCFA.
func (l *Listing) Price() int {
	return l.price
}

// Quantity returns the remaining stock.
func (l *Listing) Quantity() int {
	return l.quantity
}

// InitialQuantity returns the stock at publish time.
func (l *Listing) InitialQuantity() int {
	return l.initialQuantity
}

// IsAvailable reports whether at least one unit remains.
func (l *Listing) IsAvailable() bool {
	return l.isAvailable
}

// SellerID returns the seller's user identifier.
func (l *Listing) SellerID() kernel.UUID {
	return l.sellerID
}

// SellerName returns the seller's display name snapshot.
func (l *Listing) SellerName() string {
	return l.sellerName
}

// SellerAccountType returns the seller's account type snapshot,
// which determines the commission rate applied at checkout.
func (l *Listing) SellerAccountType() account.Type {
	return l.sellerAccountType
}

// ImageRef returns the reference to the primary article image.
func (l *Listing) ImageRef() string {
	return l.imageRef
}

// Version returns the optimistic-concurrency token.
func (l *Listing) Version() int {
	return l.version
}

// DecrementStock consumes one unit of stock and re-derives availability.
// The quantity floors at zero; decrementing an already-empty listing is a
// no-op on the count. Returns the new quantity.
func (l *Listing) DecrementStock() int {
	newQuantity := l.quantity - 1
	if newQuantity < 0 {
		newQuantity = 0
	}

	l.quantity = newQuantity
	l.isAvailable = newQuantity > 0
	return newQuantity
}

func (l *Listing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Listing) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	l.title = title
	return nil
}

func (l *Listing) setPrice(price int) error {
	if price < MinPrice || price > MaxPrice {
		return errs.NewValueIsOutOfRangeError("price", price, MinPrice, MaxPrice)
	}
	l.price = price
	return nil
}

func (l *Listing) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Listing) setSeller(sellerID kernel.UUID, sellerName string, sellerAccountType account.Type) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if sellerName == "" {
		return errs.NewValueIsRequiredError("sellerName")
	}
	if err := sellerAccountType.Validate(); err != nil {
		return err
	}

	l.sellerID = sellerID
	l.sellerName = sellerName
	l.sellerAccountType = sellerAccountType
	return nil
}
