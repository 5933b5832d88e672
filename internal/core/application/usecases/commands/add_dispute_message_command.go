package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddDisputeMessageCommandIsNotConstructed = errors.New(
	"AddDisputeMessageCommand must be created via NewAddDisputeMessageCommand constructor",
)

// AddDisputeMessageCommand represents a participant posting to a case's
// conversation thread.
type AddDisputeMessageCommand struct { //nolint:recvcheck //using for validation
	disputeID kernel.UUID
	actor     account.Actor
	text      string

	guard guard.ConstructorGuard
}

// NewAddDisputeMessageCommand creates a command to post a case message.
func NewAddDisputeMessageCommand(
	disputeID kernel.UUID, actor account.Actor, text string,
) (AddDisputeMessageCommand, error) {
	cmd := AddDisputeMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setActor(actor),
		cmd.setText(text),
	); err != nil {
		return AddDisputeMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDisputeMessageCommand) Validate() error {
	return c.guard.Validate(ErrAddDisputeMessageCommandIsNotConstructed)
}

// DisputeID returns the case being posted to.
func (c AddDisputeMessageCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the acting user.
func (c AddDisputeMessageCommand) Actor() account.Actor {
	return c.actor
}

// Text returns the message body.
func (c AddDisputeMessageCommand) Text() string {
	return c.text
}

func (c *AddDisputeMessageCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *AddDisputeMessageCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("add dispute message", err)
	}
	c.actor = actor
	return nil
}

func (c *AddDisputeMessageCommand) setText(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("message text")
	}
	c.text = text
	return nil
}
