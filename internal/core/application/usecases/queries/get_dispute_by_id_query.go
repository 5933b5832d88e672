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

var ErrGetDisputeByIDQueryIsNotConstructed = errors.New(
	"GetDisputeByIDQuery must be created via NewGetDisputeByIDQuery constructor",
)

// GetDisputeByIDQuery retrieves the full detail of one case, including the
// conversation thread and the resolution if one was recorded.
// Only the case's parties and operators may read it.
type GetDisputeByIDQuery struct {
	disputeID kernel.UUID
	actor     account.Actor

	guard guard.ConstructorGuard
}

// NewGetDisputeByIDQuery creates a query for one case's detail.
func NewGetDisputeByIDQuery(disputeID kernel.UUID, actor account.Actor) (GetDisputeByIDQuery, error) {
	if err := disputeID.Validate(); err != nil {
		return GetDisputeByIDQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetDisputeByIDQuery{}, errs.NewAuthenticationRequiredErrorWithCause("get dispute", err)
	}

	return GetDisputeByIDQuery{
		disputeID: disputeID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDisputeByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetDisputeByIDQueryIsNotConstructed)
}

// DisputeID returns the requested case identifier.
func (q GetDisputeByIDQuery) DisputeID() kernel.UUID {
	return q.disputeID
}

// Actor returns the acting user.
func (q GetDisputeByIDQuery) Actor() account.Actor {
	return q.actor
}

// DisputeMessageView is one thread entry in a case detail response.
type DisputeMessageView struct {
	SenderID   kernel.UUID
	SenderName string
	SenderRole dispute.Role
	Text       string
	SentAt     time.Time
}

// DisputeResolutionView is the recorded decision in a case detail response.
type DisputeResolutionView struct {
	Type      dispute.ResolutionType
	Amount    int
	Note      string
	DecidedBy kernel.UUID
	DecidedAt time.Time
}

// GetDisputeByIDQueryResponse is the full case detail.
type GetDisputeByIDQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	OrderNumber  string
	ArticleTitle string
	Amount       int
	BuyerID      kernel.UUID
	BuyerName    string
	SellerID     kernel.UUID
	SellerName   string
	OpenedBy     kernel.UUID
	Reason       dispute.Reason
	Description  string
	Evidence     []string
	Status       dispute.Status
	Messages     []DisputeMessageView
	Resolution   *DisputeResolutionView
	OpenedAt     time.Time
}
