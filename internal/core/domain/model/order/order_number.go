package order

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"time"

	"marketplace/internal/pkg/errs"
)

// orderNumberSuffixLength is the number of random base36 characters appended
// to the timestamp part of an order number.
const orderNumberSuffixLength = 5

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var orderNumberPattern = regexp.MustCompile(`^LM-\d{13,}-[0-9A-Z]{5}$`)

// NewOrderNumber generates a human-reconciliation token of the form
// LM-<epoch-millis>-<5 random base36 chars, uppercased>. The buyer quotes it
// in the manual payment transfer and the operator matches it back.
//
// The format alone does not guarantee uniqueness; the store enforces a unique
// index on the column as well.
func NewOrderNumber() string {
	suffix := make([]byte, orderNumberSuffixLength)
	raw := make([]byte, orderNumberSuffixLength)

	// rand.Read never fails on supported platforms; it panics internally otherwise.
	_, _ = rand.Read(raw)
	for i, b := range raw {
		suffix[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}

	return fmt.Sprintf("LM-%d-%s", time.Now().UnixMilli(), suffix)
}

// ValidateOrderNumber checks that a string has the order-number format.
func ValidateOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(orderNumber) {
		return errs.NewValueIsInvalidError("orderNumber")
	}
	return nil
}
