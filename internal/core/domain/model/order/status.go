package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with defined transitions so orders follow the
// manual escrow-style workflow: the buyer reports a transfer, an operator
// confirms it, the seller ships, the buyer confirms receipt and completion.
//
// State transitions:
//
//	PendingPayment ──> PaymentConfirming ──> Paid ──> Shipped ──> Delivered ──> Completed
//	       │                  │                │         │            │
//	       └──────────────────┴────────┬───────┴─────────┴────────────┘
//	                                   ├──> Cancelled
//	                                   └──> Disputed ──> Completed | Cancelled (settlement)
//
// Completed and Cancelled are terminal. Disputed is not: settling the linked
// dispute moves the order to one of the terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status after checkout: the buyer has not
	// yet reported the manual transfer.
	PendingPayment

	// PaymentConfirming means the buyer self-reported the transfer and an
	// operator still has to verify it against the payment application.
	PaymentConfirming

	// Paid means an operator confirmed the transfer was received.
	Paid

	// Shipped means the seller handed the article to the carrier.
	Shipped

	// Delivered means the buyer confirmed physical receipt.
	Delivered

	// Completed is the terminal happy-path status. Commission revenue is
	// recognized here and the seller payout becomes due.
	Completed

	// Cancelled is the terminal status for an aborted order.
	// Stock consumed at checkout is not restored.
	Cancelled

	// Disputed means a dispute has been opened against the order.
	// The order stays in this status until the dispute is settled.
	Disputed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		PendingPayment:    "pending_payment",
		PaymentConfirming: "payment_confirming",
		Paid:              "paid",
		Shipped:           "shipped",
		Delivered:         "delivered",
		Completed:         "completed",
		Cancelled:         "cancelled",
		Disputed:          "disputed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPayment:    "pending_payment",
		PaymentConfirming: "payment_confirming",
		Paid:              "paid",
		Shipped:           "shipped",
		Delivered:         "delivered",
		Completed:         "completed",
		Cancelled:         "cancelled",
		Disputed:          "disputed",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used to vet Status values
// coming from persistence or the API boundary.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status is invalid")
	}
	return nil
}

// String returns the wire name of the status ("pending_payment", "paid", ...).
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status from its wire name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status is invalid")
}

// IsTerminal reports whether no further transition is expected from the status.
// Disputed is deliberately not terminal: settlement still moves it.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// MarkPaymentSent transitions to PaymentConfirming.
//
// Valid predecessor: PendingPayment.
func (s Status) MarkPaymentSent() (Status, error) {
	if s != PendingPayment {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "mark payment sent")
	}
	return PaymentConfirming, nil
}

// ConfirmPayment transitions to Paid.
//
// Valid predecessor: PaymentConfirming. Confirming a payment that was never
// reported, or re-confirming a paid order, is rejected.
func (s Status) ConfirmPayment() (Status, error) {
	if s != PaymentConfirming {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "confirm payment")
	}
	return Paid, nil
}

// Ship transitions to Shipped.
//
// Valid predecessor: Paid. Sellers cannot ship before the operator confirmed
// the transfer.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "ship")
	}
	return Shipped, nil
}

// Deliver transitions to Delivered.
//
// Valid predecessor: Shipped.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "deliver")
	}
	return Delivered, nil
}

// Complete transitions to Completed.
//
// Valid predecessor: Delivered. Disputed orders complete only through
// settlement (see Settle).
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "complete")
	}
	return Completed, nil
}

// Cancel transitions to Cancelled.
//
// Valid predecessors: any non-terminal status, including Disputed.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	return Cancelled, nil
}

// Dispute transitions to Disputed.
//
// Valid predecessors: any non-terminal status that is not already Disputed.
func (s Status) Dispute() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() || s == Disputed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "open dispute")
	}
	return Disputed, nil
}

// Settle transitions a Disputed order to the terminal status decided by the
// dispute resolution: Completed for a seller-favor outcome, Cancelled for a
// refund or buyer-favor outcome.
//
// Valid predecessor: Disputed only.
func (s Status) Settle(outcome Status) (Status, error) {
	if s != Disputed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "settle")
	}
	if outcome != Completed && outcome != Cancelled {
		return Unknown, errs.NewValueIsInvalidError("settlement outcome is invalid")
	}
	return outcome, nil
}
