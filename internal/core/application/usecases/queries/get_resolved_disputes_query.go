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

var ErrGetResolvedDisputesQueryIsNotConstructed = errors.New(
	"GetResolvedDisputesQuery must be created via NewGetResolvedDisputesQuery constructor",
)

// GetResolvedDisputesQuery retrieves decided cases (resolved or closed) for
// the operator archive.
type GetResolvedDisputesQuery struct {
	actor account.Actor

	guard guard.ConstructorGuard
}

// NewGetResolvedDisputesQuery creates a query for the decided case archive.
func NewGetResolvedDisputesQuery(actor account.Actor) (GetResolvedDisputesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetResolvedDisputesQuery{}, errs.NewAuthenticationRequiredErrorWithCause("get resolved disputes", err)
	}

	return GetResolvedDisputesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetResolvedDisputesQuery) Validate() error {
	return q.guard.Validate(ErrGetResolvedDisputesQueryIsNotConstructed)
}

// Actor returns the acting user.
func (q GetResolvedDisputesQuery) Actor() account.Actor {
	return q.actor
}

// GetResolvedDisputesQueryResponse is one row of the decided case archive,
// including the decision that settled it.
type GetResolvedDisputesQueryResponse struct {
	ID               kernel.UUID
	OrderNumber      string
	ArticleTitle     string
	Amount           int
	BuyerName        string
	SellerName       string
	Status           dispute.Status
	ResolutionType   dispute.ResolutionType
	ResolutionAmount int
	DecidedAt        time.Time
}
