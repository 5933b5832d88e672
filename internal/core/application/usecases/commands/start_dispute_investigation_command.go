package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrStartDisputeInvestigationCommandIsNotConstructed = errors.New(
	"StartDisputeInvestigationCommand must be created via NewStartDisputeInvestigationCommand constructor",
)

// StartDisputeInvestigationCommand represents an operator picking a case up.
type StartDisputeInvestigationCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	actor     account.Actor

	guard guard.ConstructorGuard
}

// NewStartDisputeInvestigationCommand creates a command to start investigating a case.
func NewStartDisputeInvestigationCommand(
	disputeID kernel.UUID, actor account.Actor,
) (StartDisputeInvestigationCommand, error) {
	cmd := StartDisputeInvestigationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setActor(actor),
	); err != nil {
		return StartDisputeInvestigationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDisputeInvestigationCommand) Validate() error {
	return c.guard.Validate(ErrStartDisputeInvestigationCommandIsNotConstructed)
}

// DisputeID returns the case being picked up.
func (c StartDisputeInvestigationCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the acting user.
func (c StartDisputeInvestigationCommand) Actor() account.Actor {
	return c.actor
}

func (c *StartDisputeInvestigationCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *StartDisputeInvestigationCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("start dispute investigation", err)
	}
	c.actor = actor
	return nil
}
