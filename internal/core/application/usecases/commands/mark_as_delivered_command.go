package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrMarkAsDeliveredCommandIsNotConstructed = errors.New(
	"MarkAsDeliveredCommand must be created via NewMarkAsDeliveredCommand constructor",
)

// MarkAsDeliveredCommand represents the buyer confirming physical receipt.
type MarkAsDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   account.Actor

	guard guard.ConstructorGuard
}

// NewMarkAsDeliveredCommand creates a command to confirm receipt.
func NewMarkAsDeliveredCommand(orderID kernel.UUID, actor account.Actor) (MarkAsDeliveredCommand, error) {
	cmd := MarkAsDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return MarkAsDeliveredCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAsDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkAsDeliveredCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c MarkAsDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c MarkAsDeliveredCommand) Actor() account.Actor {
	return c.actor
}

func (c *MarkAsDeliveredCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MarkAsDeliveredCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("mark as delivered", err)
	}
	c.actor = actor
	return nil
}
