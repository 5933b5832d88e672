package dispute

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ResolutionType is the operator's decision on a dispute.
type ResolutionType int

const (
	// UnknownResolution represents an invalid or undefined resolution type.
	UnknownResolution ResolutionType = iota

	// Refund returns money to the buyer. The linked order is cancelled.
	Refund

	// BuyerFavor decides for the buyer without a monetary refund.
	// The linked order is cancelled.
	BuyerFavor

	// SellerFavor decides for the seller. The linked order is completed.
	SellerFavor
)

func getResolutionTypeStrings() map[ResolutionType]string {
	return map[ResolutionType]string{
		UnknownResolution: "unknown",
		Refund:            "refund",
		BuyerFavor:        "buyer_favor",
		SellerFavor:       "seller_favor",
	}
}

// Validate checks that the resolution type is one of the defined values.
func (t ResolutionType) Validate() error {
	if t != Refund && t != BuyerFavor && t != SellerFavor {
		return errs.NewValueIsInvalidError("resolution type is invalid")
	}
	return nil
}

// String returns the wire name of the resolution type.
func (t ResolutionType) String() string {
	if s, ok := getResolutionTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// ResolutionTypeFromString parses a resolution type from its wire name.
func ResolutionTypeFromString(s string) (ResolutionType, error) {
	switch s {
	case "refund":
		return Refund, nil
	case "buyer_favor":
		return BuyerFavor, nil
	case "seller_favor":
		return SellerFavor, nil
	default:
		return UnknownResolution, errs.NewValueIsInvalidError("resolution type is invalid")
	}
}

// status returns the dispute status a decision of this type lands in.
func (t ResolutionType) status() Status {
	switch t {
	case Refund:
		return ResolvedRefund
	case BuyerFavor:
		return ResolvedBuyer
	case SellerFavor:
		return ResolvedSeller
	default:
		return Unknown
	}
}

// Resolution records the operator's decision on a dispute: what was decided,
// any refund amount, the written rationale, who decided and when.
type Resolution struct {
	resolutionType ResolutionType
	amount         int
	note           string
	decidedBy      kernel.UUID
	decidedAt      time.Time

	isConstructed bool
}

func newResolution(resolutionType ResolutionType, amount int, note string, decidedBy kernel.UUID) (Resolution, error) {
	if err := errors.Join(
		resolutionType.Validate(),
		decidedBy.Validate(),
		func() error {
			if note == "" {
				return errs.NewValueIsRequiredError("resolution note")
			}
			return nil
		}(),
	); err != nil {
		return Resolution{}, err
	}

	return Resolution{
		resolutionType: resolutionType,
		amount:         amount,
		note:           note,
		decidedBy:      decidedBy,
		decidedAt:      time.Now().UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreResolution reconstructs a resolution from persistence with its original timestamp.
func RestoreResolution(
	resolutionType ResolutionType, amount int, note string, decidedBy kernel.UUID, decidedAt time.Time,
) (Resolution, error) {
	r, err := newResolution(resolutionType, amount, note, decidedBy)
	if err != nil {
		return Resolution{}, err
	}
	r.decidedAt = decidedAt
	return r, nil
}

// Type returns the decision kind.
func (r Resolution) Type() ResolutionType {
	return r.resolutionType
}

// Amount returns the refund amount in FCFA, zero for non-refund decisions.
func (r Resolution) Amount() int {
	return r.amount
}

// Note returns the operator's written rationale.
func (r Resolution) Note() string {
	return r.note
}

// DecidedBy returns the deciding operator's user identifier.
func (r Resolution) DecidedBy() kernel.UUID {
	return r.decidedBy
}

// DecidedAt returns when the decision was recorded.
func (r Resolution) DecidedAt() time.Time {
	return r.decidedAt
}
