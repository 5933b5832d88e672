package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// ArticleSnapshot is the slice of a listing copied into an order at checkout.
// Orders never reference the listing live: a later price change on the listing
// does not retroactively affect an existing order's total.
type ArticleSnapshot struct {
	ListingID         kernel.UUID
	Title             string
	ImageRef          string
	Price             int
	SellerID          kernel.UUID
	SellerName        string
	SellerAccountType account.Type
}

// Validate checks the snapshot carries everything an order copies from a listing.
func (s ArticleSnapshot) Validate() error {
	return errors.Join(
		s.ListingID.Validate(),
		s.SellerID.Validate(),
		func() error {
			if s.Title == "" {
				return errs.NewValueIsRequiredError("article title")
			}
			return nil
		}(),
		func() error {
			if s.SellerName == "" {
				return errs.NewValueIsRequiredError("sellerName")
			}
			return nil
		}(),
		func() error {
			if s.Price <= 0 {
				return errs.NewValueIsInvalidError("article price")
			}
			return nil
		}(),
		s.SellerAccountType.Validate(),
	)
}

// Order is the aggregate root for one buyer's purchase of one listing.
//
// Order follows these invariants:
//   - totalAmount == articlePrice + deliveryFee + commission, fixed at creation
//   - commission == max(round(articlePrice * sellerRate), MinCommission)
//   - Status transitions follow the lifecycle state machine in Status
//   - Stage timestamps are stamped exactly once, by their transition
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string

	buyerID    kernel.UUID
	buyerName  string
	buyerPhone string

	sellerID          kernel.UUID
	sellerName        string
	sellerAccountType account.Type

	listingID       kernel.UUID
	listingTitle    string
	listingImageRef string

	articlePrice int
	deliveryFee  int
	commission   int
	totalAmount  int

	deliveryMethod DeliveryMethod
	status         Status

	trackingNumber     string
	cancellationReason string
	disputeReason      string

	createdAt   time.Time
	paidAt      *time.Time
	shippedAt   *time.Time
	deliveredAt *time.Time
	completedAt *time.Time

	version int

	isConstructed bool
}

// NewOrder creates an order at checkout in PendingPayment status.
// It copies the article snapshot, computes the delivery fee from the method,
// the commission from the seller's account-type rate, and fixes the total.
func NewOrder(
	id kernel.UUID,
	buyer account.Actor,
	article ArticleSnapshot,
	deliveryMethod DeliveryMethod,
) (*Order, error) {
	if err := buyer.Validate(); err != nil {
		return nil, errs.NewAuthenticationRequiredErrorWithCause("create order", err)
	}

	o := &Order{
		status:        PendingPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setArticle(article),
		o.setDeliveryMethod(deliveryMethod),
	); err != nil {
		return nil, err
	}

	o.orderNumber = NewOrderNumber()
	o.buyerID = buyer.ID()
	o.buyerName = buyer.FullName()
	o.buyerPhone = buyer.Phone()

	o.deliveryFee = deliveryMethod.Fee()
	o.commission = CalculateCommission(article.Price, article.SellerAccountType.CommissionRate(), MinCommission)
	o.totalAmount = o.articlePrice + o.deliveryFee + o.commission
	o.createdAt = time.Now().UTC()

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// The monetary invariant is re-checked so corrupted rows do not surface as
// valid aggregates.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	buyerName, buyerPhone string,
	article ArticleSnapshot,
	deliveryFee, commission, totalAmount int,
	deliveryMethod DeliveryMethod,
	status Status,
	trackingNumber, cancellationReason, disputeReason string,
	createdAt time.Time,
	paidAt, shippedAt, deliveredAt, completedAt *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		ValidateOrderNumber(orderNumber),
		buyerID.Validate(),
		o.setArticle(article),
		o.setDeliveryMethod(deliveryMethod),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if totalAmount != article.Price+deliveryFee+commission {
		return nil, errs.NewValueIsInvalidError("totalAmount does not equal articlePrice + deliveryFee + commission")
	}

	o.orderNumber = orderNumber
	o.buyerID = buyerID
	o.buyerName = buyerName
	o.buyerPhone = buyerPhone
	o.deliveryFee = deliveryFee
	o.commission = commission
	o.totalAmount = totalAmount
	o.status = status
	o.trackingNumber = trackingNumber
	o.cancellationReason = cancellationReason
	o.disputeReason = disputeReason
	o.createdAt = createdAt
	o.paidAt = paidAt
	o.shippedAt = shippedAt
	o.deliveredAt = deliveredAt
	o.completedAt = completedAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-reconciliation token for the manual transfer.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// BuyerID returns the buyer's user identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// BuyerName returns the buyer's display-name snapshot.
func (o *Order) BuyerName() string {
	return o.buyerName
}

// BuyerPhone returns the buyer's phone snapshot.
func (o *Order) BuyerPhone() string {
	return o.buyerPhone
}

// SellerID returns the seller's user identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// SellerName returns the seller's display-name snapshot.
func (o *Order) SellerName() string {
	return o.sellerName
}

// SellerAccountType returns the seller's account-type snapshot,
// from which the commission rate was taken at checkout.
func (o *Order) SellerAccountType() account.Type {
	return o.sellerAccountType
}

// ListingID returns the purchased listing's identifier.
func (o *Order) ListingID() kernel.UUID {
	return o.listingID
}

// ListingTitle returns the article-title snapshot.
func (o *Order) ListingTitle() string {
	return o.listingTitle
}

// ListingImageRef returns the article-image snapshot reference.
func (o *Order) ListingImageRef() string {
	return o.listingImageRef
}

// ArticlePrice returns the article price at checkout time, in FCFA.
func (o *Order) ArticlePrice() int {
	return o.articlePrice
}

// DeliveryFee returns the delivery fee in FCFA.
func (o *Order) DeliveryFee() int {
	return o.deliveryFee
}

// Commission returns the platform fee in FCFA.
func (o *Order) Commission() int {
	return o.commission
}

// TotalAmount returns the amount the buyer transfers, in FCFA.
// Fixed at creation; immutable thereafter.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// SellerPayout returns what the seller is owed once the order completes.
func (o *Order) SellerPayout() int {
	return o.articlePrice - o.commission
}

// DeliveryMethod returns how the article changes hands.
func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TrackingNumber returns the carrier tracking number, empty until shipped.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CancellationReason returns the reason recorded at cancellation.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// DisputeReason returns the reason recorded when a dispute was opened.
func (o *Order) DisputeReason() string {
	return o.disputeReason
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaidAt returns when the operator confirmed payment, nil before that.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// ShippedAt returns when the seller shipped, nil before that.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns when the buyer confirmed receipt, nil before that.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CompletedAt returns when the order completed, nil before that.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Version returns the optimistic-concurrency token.
func (o *Order) Version() int {
	return o.version
}

// MarkPaymentSent records the buyer's self-report that the manual transfer
// went out. PendingPayment -> PaymentConfirming.
func (o *Order) MarkPaymentSent() error {
	newStatus, err := o.status.MarkPaymentSent()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmPayment records the operator's verification of the transfer and
// stamps paidAt. PaymentConfirming -> Paid.
func (o *Order) ConfirmPayment() error {
	newStatus, err := o.status.ConfirmPayment()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.paidAt = &now
	return nil
}

// MarkAsShipped records the hand-over to the carrier, stores the tracking
// number and stamps shippedAt. Paid -> Shipped.
func (o *Order) MarkAsShipped(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.trackingNumber = trackingNumber
	o.shippedAt = &now
	return nil
}

// MarkAsDelivered records the buyer's confirmation of physical receipt and
// stamps deliveredAt. Shipped -> Delivered.
func (o *Order) MarkAsDelivered() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Complete finishes the order and stamps completedAt. Delivered -> Completed.
// This is the point at which commission revenue is recognized and the seller
// payout becomes due.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now
	return nil
}

// Cancel aborts the order and records the reason verbatim. Any non-terminal
// status -> Cancelled. Consumed stock is not restored.
func (o *Order) Cancel(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

// OpenDispute flags the order as disputed and records the reason.
// Any non-terminal, non-disputed status -> Disputed. Further lifecycle
// transitions are blocked until the dispute settles the order.
func (o *Order) OpenDispute(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("disputeReason")
	}

	newStatus, err := o.status.Dispute()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.disputeReason = reason
	return nil
}

// SettleCompleted closes a disputed order in the seller's favor and stamps
// completedAt. Disputed -> Completed.
func (o *Order) SettleCompleted() error {
	newStatus, err := o.status.Settle(Completed)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now
	return nil
}

// SettleCancelled closes a disputed order in the buyer's favor (refund or
// buyer-favor outcome) and records the resolution reason. Disputed -> Cancelled.
func (o *Order) SettleCancelled(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("cancellationReason")
	}

	newStatus, err := o.status.Settle(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.cancellationReason = reason
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setArticle(article ArticleSnapshot) error {
	if err := article.Validate(); err != nil {
		return err
	}

	o.listingID = article.ListingID
	o.listingTitle = article.Title
	o.listingImageRef = article.ImageRef
	o.articlePrice = article.Price
	o.sellerID = article.SellerID
	o.sellerName = article.SellerName
	o.sellerAccountType = article.SellerAccountType
	return nil
}

func (o *Order) setDeliveryMethod(deliveryMethod DeliveryMethod) error {
	if err := deliveryMethod.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = deliveryMethod
	return nil
}
