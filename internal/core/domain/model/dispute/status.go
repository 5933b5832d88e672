package dispute

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of a dispute. It runs a state machine
// parallel to the order lifecycle: while a dispute is unsettled the linked
// order is frozen in its Disputed status.
//
// State transitions:
//
//	Open ──> Investigating ──> ResolvedRefund ─────┐
//	                      ├──> ResolvedBuyer  ─────┼──> Closed
//	                      └──> ResolvedSeller ─────┘
//
// Reaching a resolved status settles the linked order; Closed is the terminal
// archival status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status after a party raises a dispute.
	Open

	// Investigating means an operator has picked the case up.
	Investigating

	// ResolvedRefund means the operator decided a full or partial refund to the
	// buyer. The linked order is cancelled.
	ResolvedRefund

	// ResolvedBuyer means the operator decided in the buyer's favor without a
	// monetary refund. The linked order is cancelled.
	ResolvedBuyer

	// ResolvedSeller means the operator decided in the seller's favor.
	// The linked order is completed.
	ResolvedSeller

	// Closed is the terminal status after a resolved case is archived.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Open:           "open",
		Investigating:  "investigating",
		ResolvedRefund: "resolved_refund",
		ResolvedBuyer:  "resolved_buyer",
		ResolvedSeller: "resolved_seller",
		Closed:         "closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:           "open",
		Investigating:  "investigating",
		ResolvedRefund: "resolved_refund",
		ResolvedBuyer:  "resolved_buyer",
		ResolvedSeller: "resolved_seller",
		Closed:         "closed",
	}
}

// Validate checks if the Status value is one of the defined dispute states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("dispute status is invalid")
	}
	return nil
}

// String returns the wire name of the status ("open", "resolved_refund", ...).
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a dispute status from its wire name.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("dispute status is invalid")
}

// IsResolved reports whether an operator decision has been recorded.
func (s Status) IsResolved() bool {
	return s == ResolvedRefund || s == ResolvedBuyer || s == ResolvedSeller
}

// IsTerminal reports whether no further transition is expected from the status.
func (s Status) IsTerminal() bool {
	return s == Closed
}

// StartInvestigation transitions to Investigating.
//
// Valid predecessor: Open.
func (s Status) StartInvestigation() (Status, error) {
	if s != Open {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "start investigation")
	}
	return Investigating, nil
}

// Resolve transitions to the resolved status matching the operator's decision.
//
// Valid predecessor: Investigating. A dispute cannot be resolved straight from
// Open: the operator has to pick the case up first.
func (s Status) Resolve(outcome Status) (Status, error) {
	if s != Investigating {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "resolve")
	}
	if !outcome.IsResolved() {
		return Unknown, errs.NewValueIsInvalidError("resolution outcome is invalid")
	}
	return outcome, nil
}

// Close transitions to Closed.
//
// Valid predecessors: the resolved statuses. An unresolved dispute cannot be
// closed away.
func (s Status) Close() (Status, error) {
	if !s.IsResolved() {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "close")
	}
	return Closed, nil
}
