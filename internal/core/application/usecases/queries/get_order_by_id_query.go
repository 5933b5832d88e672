package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves the full detail of one order.
// Only the order's parties and operators may read it.
type GetOrderByIDQuery struct {
	orderID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one order's detail.
func NewGetOrderByIDQuery(orderID kernel.UUID, actor account.Actor) (GetOrderByIDQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetOrderByIDQuery{}, errs.NewAuthenticationRequiredErrorWithCause("get order", err)
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the acting user.
func (q GetOrderByIDQuery) Actor() account.Actor {
	return q.actor
}

// GetOrderByIDQueryResponse is the full order detail, including the monetary
// breakdown and the per-stage timestamps.
type GetOrderByIDQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	BuyerID         kernel.UUID
	BuyerName       string
	BuyerPhone      string
	SellerID        kernel.UUID
	SellerName      string
	ListingID       kernel.UUID
	ListingTitle    string
	ListingImageRef string

	ArticlePrice int
	DeliveryFee  int
	Commission   int
	TotalAmount  int

	DeliveryMethod order.DeliveryMethod
	Status         order.Status

	TrackingNumber     string
	CancellationReason string
	DisputeReason      string

	CreatedAt   time.Time
	PaidAt      *time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CompletedAt *time.Time
}
