package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMarkAsShippedCommandIsNotConstructed = errors.New(
	"MarkAsShippedCommand must be created via NewMarkAsShippedCommand constructor",
)

// MarkAsShippedCommand represents the seller handing the article to a carrier.
type MarkAsShippedCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actor          account.Actor
	trackingNumber string

	guard guard.ConstructorGuard
}

// NewMarkAsShippedCommand creates a command to record a shipment.
// The tracking number is mandatory so the buyer can follow the parcel.
func NewMarkAsShippedCommand(
	orderID kernel.UUID, actor account.Actor, trackingNumber string,
) (MarkAsShippedCommand, error) {
	cmd := MarkAsShippedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTrackingNumber(trackingNumber),
	); err != nil {
		return MarkAsShippedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAsShippedCommand) Validate() error {
	return c.guard.Validate(ErrMarkAsShippedCommandIsNotConstructed)
}

// OrderID returns the order being shipped.
func (c MarkAsShippedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c MarkAsShippedCommand) Actor() account.Actor {
	return c.actor
}

// TrackingNumber returns the carrier tracking number.
func (c MarkAsShippedCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c *MarkAsShippedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkAsShippedCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("mark as shipped", err)
	}
	c.actor = actor
	return nil
}

func (c *MarkAsShippedCommand) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	c.trackingNumber = trackingNumber
	return nil
}
