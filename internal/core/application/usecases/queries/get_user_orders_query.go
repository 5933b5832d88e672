// Package queries contains read-only operations against the persistence layer.
// Implements the Query side of the CQRS architecture: handlers bypass the
// aggregates and read projection rows straight from the database.
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

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves every order the acting user participates in,
// on either side of the deal.
type GetUserOrdersQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for the acting user's orders.
func NewGetUserOrdersQuery(actor account.Actor) (GetUserOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetUserOrdersQuery{}, errs.NewAuthenticationRequiredErrorWithCause("get user orders", err)
	}

	return GetUserOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetUserOrdersQuery) Actor() account.Actor {
	return q.actor
}

// GetUserOrdersQueryResponse is one row of the user's order list.
type GetUserOrdersQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	ListingTitle    string
	ListingImageRef string
	BuyerName       string
	SellerName      string
	TotalAmount     int
	Status          order.Status
	CreatedAt       time.Time
}
