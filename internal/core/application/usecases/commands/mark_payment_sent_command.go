package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMarkPaymentSentCommandIsNotConstructed = errors.New(
	"MarkPaymentSentCommand must be created via NewMarkPaymentSentCommand constructor",
)

// MarkPaymentSentCommand represents the buyer's self-report that the manual
// transfer for an order went out.
type MarkPaymentSentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewMarkPaymentSentCommand creates a command to report a sent payment.
func NewMarkPaymentSentCommand(orderID kernel.UUID, actor account.Actor) (MarkPaymentSentCommand, error) {
	cmd := MarkPaymentSentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return MarkPaymentSentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPaymentSentCommand) Validate() error {
	return c.guard.Validate(ErrMarkPaymentSentCommandIsNotConstructed)
}

// OrderID returns the order being reported on.
func (c MarkPaymentSentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c MarkPaymentSentCommand) Actor() account.Actor {
	return c.actor
}

func (c *MarkPaymentSentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkPaymentSentCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("mark payment sent", err)
	}
	c.actor = actor
	return nil
}
