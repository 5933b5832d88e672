package order

import (
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
)

// Pricing constants in FCFA.
const (
	// MinCommission is the floor applied to every commission.
	MinCommission = 200

	// ShippingFee is the flat delivery fee for carrier shipping.
	// Meet-up hand-overs carry no fee.
	ShippingFee = 2500
)

// DeliveryMethod is how the article changes hands.
type DeliveryMethod int

const (
	// UnknownDeliveryMethod represents an invalid or undefined delivery method.
	UnknownDeliveryMethod DeliveryMethod = iota

	// Meetup is an in-person hand-over, free of delivery charges.
	Meetup

	// Shipping is carrier delivery at the flat ShippingFee.
	Shipping
)

// Validate checks that the delivery method is one of the defined values.
func (m DeliveryMethod) Validate() error {
	if m != Meetup && m != Shipping {
		return errs.NewValueIsInvalidErrorWithCause("delivery method is invalid",
			fmt.Errorf("%d is not a valid delivery method", m))
	}
	return nil
}

// String returns the wire name of the delivery method.
func (m DeliveryMethod) String() string {
	switch m {
	case Meetup:
		return "meetup"
	case Shipping:
		return "shipping"
	default:
		return "unknown"
	}
}

// Fee returns the delivery fee for the method.
func (m DeliveryMethod) Fee() int {
	if m == Shipping {
		return ShippingFee
	}
	return 0
}

// DeliveryMethodFromString parses a delivery method from its wire name.
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	switch s {
	case "meetup":
		return Meetup, nil
	case "shipping":
		return Shipping, nil
	default:
		return UnknownDeliveryMethod, errs.NewValueIsInvalidErrorWithCause("delivery method is invalid",
			fmt.Errorf("%q is not a valid delivery method", s))
	}
}

// CalculateCommission computes the platform fee for an article price:
// the rate share of the price, rounded to the nearest unit, but never less
// than minCommission. Pure; price is expected to be non-negative.
func CalculateCommission(price int, rate float64, minCommission int) int {
	commission := int(math.Round(float64(price) * rate))
	if commission < minCommission {
		return minCommission
	}
	return commission
}
