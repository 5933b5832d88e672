package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents an operator's verification that the buyer's
// manual transfer actually arrived.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm a reported payment.
func NewConfirmPaymentCommand(orderID kernel.UUID, actor account.Actor) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c ConfirmPaymentCommand) Actor() account.Actor {
	return c.actor
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("confirm payment", err)
	}
	c.actor = actor
	return nil
}
