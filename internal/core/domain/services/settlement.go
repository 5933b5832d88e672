package services

import (
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// DisputeSettler is a domain service that carries a dispute's resolution over
// to the contested order. It is the only place where the two aggregates meet,
// so a dispute never mutates its order directly and the order state machine's
// settlement transitions stay the single gate.
//
// Business rules:
//   - Only a resolved dispute settles its order
//   - The dispute must reference the order being settled
//   - SellerFavor completes the order; Refund and BuyerFavor cancel it,
//     with the resolution note recorded as the cancellation reason
type DisputeSettler struct{}

// NewDisputeSettler creates a new DisputeSettler instance.
func NewDisputeSettler() DisputeSettler {
	return DisputeSettler{}
}

// Settle applies the dispute's resolution to the order.
//
// Returns an error when either aggregate is invalid, the dispute does not
// belong to the order, the dispute carries no resolution yet, or the order is
// not in a settleable status.
func (s DisputeSettler) Settle(d *dispute.Dispute, ord *order.Order) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := ord.Validate(); err != nil {
		return err
	}

	if !d.OrderID().IsEqual(ord.ID()) {
		return errs.NewValueIsInvalidError("dispute does not belong to the order")
	}

	resolution := d.Resolution()
	if resolution == nil {
		return errs.NewInvalidTransitionError(d.Status().String(), "settle order")
	}

	switch resolution.Type() {
	case dispute.SellerFavor:
		return ord.SettleCompleted()
	case dispute.Refund, dispute.BuyerFavor:
		return ord.SettleCancelled(resolution.Note())
	default:
		return errs.NewValueIsInvalidError("resolution type is invalid")
	}
}
