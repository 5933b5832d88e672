package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand represents a party contesting an order: a case is opened
// and the order is frozen until the case settles it.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID   kernel.UUID
	orderID     kernel.UUID
	actor       account.Actor
	reason      dispute.Reason
	description string
	evidence    []string

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a command to open a case against an order.
func NewOpenDisputeCommand(
	disputeID, orderID kernel.UUID,
	actor account.Actor,
	reason dispute.Reason,
	description string,
	evidence []string,
) (OpenDisputeCommand, error) {
	cmd := OpenDisputeCommand{
		evidence: evidence,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setReason(reason),
		cmd.setDescription(description),
	); err != nil {
		return OpenDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// DisputeID returns the identifier the new case will be created under.
func (c OpenDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// OrderID returns the contested order.
func (c OpenDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting user.
func (c OpenDisputeCommand) Actor() account.Actor {
	return c.actor
}

// Reason returns why the case is being raised.
func (c OpenDisputeCommand) Reason() dispute.Reason {
	return c.reason
}

// Description returns the opener's account of the problem.
func (c OpenDisputeCommand) Description() string {
	return c.description
}

// Evidence returns references to supporting material.
func (c OpenDisputeCommand) Evidence() []string {
	return c.evidence
}

func (c *OpenDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *OpenDisputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *OpenDisputeCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("open dispute", err)
	}
	c.actor = actor
	return nil
}

func (c *OpenDisputeCommand) setReason(reason dispute.Reason) error {
	if err := reason.Validate(); err != nil {
		return err
	}
	c.reason = reason
	return nil
}

func (c *OpenDisputeCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}
