package dispute

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrDisputeIsNotConstructed is returned when a Dispute instance was not
	// created through the NewDispute or RestoreDispute factory methods.
	ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")
)

// Dispute is the aggregate root for one contested order.
//
// Dispute follows these invariants:
//   - the order snapshot (number, title, amount, party names) is copied at
//     opening time and never re-read from the order
//   - Status transitions follow the case state machine in Status
//   - the message thread is append-only
//   - a resolution exists exactly when the status is resolved or closed
//   - Can only be created through NewDispute or RestoreDispute
type Dispute struct {
	id      kernel.UUID
	orderID kernel.UUID

	orderNumber  string
	articleTitle string
	amount       int

	buyerID    kernel.UUID
	buyerName  string
	sellerID   kernel.UUID
	sellerName string

	openedBy    kernel.UUID
	reason      Reason
	description string
	evidence    []string

	status     Status
	messages   []Message
	resolution *Resolution

	openedAt time.Time

	version int

	isConstructed bool
}

// NewDispute opens a case against an order, copying the order snapshot the
// case will be judged on. The dispute starts in Open status.
func NewDispute(
	id kernel.UUID,
	ord *order.Order,
	openedBy account.Actor,
	reason Reason,
	description string,
	evidence []string,
) (*Dispute, error) {
	if err := openedBy.Validate(); err != nil {
		return nil, errs.NewAuthenticationRequiredErrorWithCause("open dispute", err)
	}
	if err := ord.Validate(); err != nil {
		return nil, err
	}

	d := &Dispute{
		status:        Open,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setReason(reason),
		d.setDescription(description),
	); err != nil {
		return nil, err
	}

	d.orderID = ord.ID()
	d.orderNumber = ord.OrderNumber()
	d.articleTitle = ord.ListingTitle()
	d.amount = ord.TotalAmount()
	d.buyerID = ord.BuyerID()
	d.buyerName = ord.BuyerName()
	d.sellerID = ord.SellerID()
	d.sellerName = ord.SellerName()
	d.openedBy = openedBy.ID()
	d.evidence = evidence
	d.openedAt = time.Now().UTC()

	return d, nil
}

// RestoreDispute reconstructs a dispute from persistence.
func RestoreDispute(
	id, orderID kernel.UUID,
	orderNumber, articleTitle string,
	amount int,
	buyerID kernel.UUID, buyerName string,
	sellerID kernel.UUID, sellerName string,
	openedBy kernel.UUID,
	reason Reason,
	description string,
	evidence []string,
	status Status,
	messages []Message,
	resolution *Resolution,
	openedAt time.Time,
	version int,
) (*Dispute, error) {
	d := &Dispute{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		orderID.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		openedBy.Validate(),
		d.setReason(reason),
		d.setDescription(description),
		status.Validate(),
		order.ValidateOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	if (status.IsResolved() || status.IsTerminal()) != (resolution != nil) {
		return nil, errs.NewValueIsInvalidError("resolution does not match dispute status")
	}

	d.orderID = orderID
	d.orderNumber = orderNumber
	d.articleTitle = articleTitle
	d.amount = amount
	d.buyerID = buyerID
	d.buyerName = buyerName
	d.sellerID = sellerID
	d.sellerName = sellerName
	d.openedBy = openedBy
	d.evidence = evidence
	d.status = status
	d.messages = messages
	d.resolution = resolution
	d.openedAt = openedAt
	d.version = version

	return d, nil
}

// Validate ensures the Dispute instance was properly constructed through a factory method.
func (d *Dispute) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDisputeIsNotConstructed
	}
	return nil
}

// IsEqual compares two disputes by their unique identifiers.
func (d *Dispute) IsEqual(other *Dispute) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dispute's unique identifier.
func (d *Dispute) ID() kernel.UUID {
	return d.id
}

// OrderID returns the contested order's identifier.
func (d *Dispute) OrderID() kernel.UUID {
	return d.orderID
}

// OrderNumber returns the contested order's number snapshot.
func (d *Dispute) OrderNumber() string {
	return d.orderNumber
}

// ArticleTitle returns the contested article's title snapshot.
func (d *Dispute) ArticleTitle() string {
	return d.articleTitle
}

// Amount returns the contested order's total amount snapshot, in FCFA.
func (d *Dispute) Amount() int {
	return d.amount
}

// BuyerID returns the order buyer's user identifier.
func (d *Dispute) BuyerID() kernel.UUID {
	return d.buyerID
}

// BuyerName returns the buyer's display-name snapshot.
func (d *Dispute) BuyerName() string {
	return d.buyerName
}

// SellerID returns the order seller's user identifier.
func (d *Dispute) SellerID() kernel.UUID {
	return d.sellerID
}

// SellerName returns the seller's display-name snapshot.
func (d *Dispute) SellerName() string {
	return d.sellerName
}

// OpenedBy returns the identifier of the party who raised the case.
func (d *Dispute) OpenedBy() kernel.UUID {
	return d.openedBy
}

// Reason returns why the dispute was raised.
func (d *Dispute) Reason() Reason {
	return d.reason
}

// Description returns the opener's account of the problem.
func (d *Dispute) Description() string {
	return d.description
}

// Evidence returns references to supporting material (photos, receipts).
func (d *Dispute) Evidence() []string {
	return d.evidence
}

// Status returns the current case status.
func (d *Dispute) Status() Status {
	return d.status
}

// Messages returns the append-only conversation thread.
func (d *Dispute) Messages() []Message {
	return d.messages
}

// Resolution returns the operator's decision, nil while the case is unresolved.
func (d *Dispute) Resolution() *Resolution {
	return d.resolution
}

// OpenedAt returns when the case was raised.
func (d *Dispute) OpenedAt() time.Time {
	return d.openedAt
}

// Version returns the optimistic-concurrency token.
func (d *Dispute) Version() int {
	return d.version
}

// RoleFor resolves which side of the case the actor stands on. Party identity
// wins over the admin flag so an operator who is also the buyer speaks as the
// buyer. Actors with no standing get a permission error.
func (d *Dispute) RoleFor(actor account.Actor) (Role, error) {
	switch {
	case actor.Is(d.buyerID):
		return RoleBuyer, nil
	case actor.Is(d.sellerID):
		return RoleSeller, nil
	case actor.IsAdmin():
		return RoleAdmin, nil
	default:
		return UnknownRole, errs.NewPermissionDeniedError("participate in dispute")
	}
}

// StartInvestigation records that an operator picked the case up.
// Open -> Investigating.
func (d *Dispute) StartInvestigation() error {
	newStatus, err := d.status.StartInvestigation()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// ResolveWithRefund decides the case with a refund to the buyer.
// The amount must be positive and not exceed the contested order total.
// Investigating -> ResolvedRefund.
func (d *Dispute) ResolveWithRefund(amount int, note string, decidedBy kernel.UUID) error {
	if amount <= 0 || amount > d.amount {
		return errs.NewValueIsOutOfRangeError("refund amount", amount, 1, d.amount)
	}
	return d.resolve(Refund, amount, note, decidedBy)
}

// ResolveForBuyer decides the case in the buyer's favor without a refund.
// Investigating -> ResolvedBuyer.
func (d *Dispute) ResolveForBuyer(note string, decidedBy kernel.UUID) error {
	return d.resolve(BuyerFavor, 0, note, decidedBy)
}

// ResolveForSeller decides the case in the seller's favor.
// Investigating -> ResolvedSeller.
func (d *Dispute) ResolveForSeller(note string, decidedBy kernel.UUID) error {
	return d.resolve(SellerFavor, 0, note, decidedBy)
}

func (d *Dispute) resolve(resolutionType ResolutionType, amount int, note string, decidedBy kernel.UUID) error {
	resolution, err := newResolution(resolutionType, amount, note, decidedBy)
	if err != nil {
		return err
	}

	newStatus, err := d.status.Resolve(resolutionType.status())
	if err != nil {
		return err
	}

	d.status = newStatus
	d.resolution = &resolution
	return nil
}

// Close archives a resolved case. Resolved -> Closed.
func (d *Dispute) Close() error {
	newStatus, err := d.status.Close()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// AddMessage appends a message to the conversation thread.
// Closed cases accept no further messages.
func (d *Dispute) AddMessage(message Message) error {
	if d.status.IsTerminal() {
		return errs.NewInvalidTransitionError(d.status.String(), "add message")
	}

	d.messages = append(d.messages, message)
	return nil
}

func (d *Dispute) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispute) setReason(reason Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	d.reason = reason
	return nil
}

func (d *Dispute) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	d.description = description
	return nil
}
