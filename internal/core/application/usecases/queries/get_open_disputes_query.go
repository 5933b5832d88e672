package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOpenDisputesQueryIsNotConstructed = errors.New(
	"GetOpenDisputesQuery must be created via NewGetOpenDisputesQuery constructor",
)

// GetOpenDisputesQuery retrieves the operator case queue: disputes that are
// open or under investigation.
type GetOpenDisputesQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetOpenDisputesQuery creates a query for the active case queue.
func NewGetOpenDisputesQuery(actor account.Actor) (GetOpenDisputesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOpenDisputesQuery{}, errs.NewAuthenticationRequiredErrorWithCause("get open disputes", err)
	}

	return GetOpenDisputesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenDisputesQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenDisputesQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetOpenDisputesQuery) Actor() account.Actor {
	return q.actor
}

// GetOpenDisputesQueryResponse is one row of the case queue.
type GetOpenDisputesQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	OrderNumber  string
	ArticleTitle string
	Amount       int
	BuyerName    string
	SellerName   string
	Reason       dispute.Reason
	Status       dispute.Status
	OpenedAt     time.Time
}
