package dispute

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Reason classifies why a dispute was raised.
type Reason int

const (
	// UnknownReason represents an invalid or undefined reason.
	UnknownReason Reason = iota

	// NotReceived means the article never arrived.
	NotReceived

	// NotAsDescribed means the article differs from the listing.
	NotAsDescribed

	// Damaged means the article arrived broken.
	Damaged

	// Fake means the article is counterfeit.
	Fake

	// Communication means the other party stopped responding.
	Communication

	// OtherReason covers everything else; the description carries the detail.
	OtherReason
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		UnknownReason:  "unknown",
		NotReceived:    "not_received",
		NotAsDescribed: "not_as_described",
		Damaged:        "damaged",
		Fake:           "fake",
		Communication:  "communication",
		OtherReason:    "other",
	}
}

func getValidReasonStrings() map[Reason]string {
	//nolint:exhaustive // UnknownReason is intentionally excluded as it's invalid
	return map[Reason]string{
		NotReceived:    "not_received",
		NotAsDescribed: "not_as_described",
		Damaged:        "damaged",
		Fake:           "fake",
		Communication:  "communication",
		OtherReason:    "other",
	}
}

// Validate checks that the reason is one of the defined values.
func (r Reason) Validate() error {
	if _, ok := getValidReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dispute reason is invalid",
			fmt.Errorf("%d is not a valid dispute reason", r))
	}
	return nil
}

// String returns the wire name of the reason ("not_received", "damaged", ...).
func (r Reason) String() string {
	if s, ok := getReasonStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// ReasonFromString parses a dispute reason from its wire name.
func ReasonFromString(s string) (Reason, error) {
	for reason, name := range getValidReasonStrings() {
		if name == s {
			return reason, nil
		}
	}
	return UnknownReason, errs.NewValueIsInvalidErrorWithCause("dispute reason is invalid",
		fmt.Errorf("%q is not a valid dispute reason", s))
}
