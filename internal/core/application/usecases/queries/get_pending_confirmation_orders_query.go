package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetPendingConfirmationOrdersQueryIsNotConstructed = errors.New(
	"GetPendingConfirmationOrdersQuery must be created via NewGetPendingConfirmationOrdersQuery constructor",
)

// GetPendingConfirmationOrdersQuery retrieves the operator work queue: orders
// whose buyers reported a transfer that still has to be verified.
type GetPendingConfirmationOrdersQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetPendingConfirmationOrdersQuery creates a query for the confirmation queue.
func NewGetPendingConfirmationOrdersQuery(actor account.Actor) (GetPendingConfirmationOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetPendingConfirmationOrdersQuery{},
			errs.NewAuthenticationRequiredErrorWithCause("get pending confirmation orders", err)
	}

	return GetPendingConfirmationOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingConfirmationOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingConfirmationOrdersQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetPendingConfirmationOrdersQuery) Actor() account.Actor {
	return q.actor
}

// GetPendingConfirmationOrdersQueryResponse is one row of the confirmation queue.
// The order number is what the operator matches against the payment application.
type GetPendingConfirmationOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	BuyerName   string
	BuyerPhone  string
	TotalAmount int
	CreatedAt   time.Time
}
