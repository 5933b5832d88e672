package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCloseDisputeCommandIsNotConstructed = errors.New(
	"CloseDisputeCommand must be created via NewCloseDisputeCommand constructor",
)

// CloseDisputeCommand represents an operator archiving a resolved case.
type CloseDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	actor     account.Actor

	guard guard.ConstructorGuard
}

// NewCloseDisputeCommand creates a command to close a resolved case.
func NewCloseDisputeCommand(disputeID kernel.UUID, actor account.Actor) (CloseDisputeCommand, error) {
	cmd := CloseDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setActor(actor),
	); err != nil {
		return CloseDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseDisputeCommand) Validate() error {
	return c.guard.Validate(ErrCloseDisputeCommandIsNotConstructed)
}

// DisputeID returns the case being closed.
func (c CloseDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the acting user.
func (c CloseDisputeCommand) Actor() account.Actor {
	return c.actor
}

func (c *CloseDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *CloseDisputeCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("close dispute", err)
	}
	c.actor = actor
	return nil
}
