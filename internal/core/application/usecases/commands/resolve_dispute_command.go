package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// ResolveDisputeCommand represents an operator's decision on a case: refund,
// buyer favor or seller favor, with a written rationale.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	disputeID      kernel.UUID
	actor          account.Actor
	resolutionType dispute.ResolutionType
	amount         int
	note           string

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a case.
// The amount applies to refund decisions only and must be zero otherwise.
func NewResolveDisputeCommand(
	disputeID kernel.UUID,
	actor account.Actor,
	resolutionType dispute.ResolutionType,
	amount int,
	note string,
) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDisputeID(disputeID),
		cmd.setActor(actor),
		cmd.setResolution(resolutionType, amount),
		cmd.setNote(note),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// DisputeID returns the case being resolved.
func (c ResolveDisputeCommand) DisputeID() kernel.UUID {
	return c.disputeID
}

// Actor returns the acting user.
func (c ResolveDisputeCommand) Actor() account.Actor {
	return c.actor
}

// ResolutionType returns the decision kind.
func (c ResolveDisputeCommand) ResolutionType() dispute.ResolutionType {
	return c.resolutionType
}

// Amount returns the refund amount in FCFA, zero for non-refund decisions.
func (c ResolveDisputeCommand) Amount() int {
	return c.amount
}

// Note returns the operator's written rationale.
func (c ResolveDisputeCommand) Note() string {
	return c.note
}

func (c *ResolveDisputeCommand) setDisputeID(disputeID kernel.UUID) error {
	if err := disputeID.Validate(); err != nil {
		return err
	}
	c.disputeID = disputeID
	return nil
}

func (c *ResolveDisputeCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("resolve dispute", err)
	}
	c.actor = actor
	return nil
}

func (c *ResolveDisputeCommand) setResolution(resolutionType dispute.ResolutionType, amount int) error {
	if err := resolutionType.Validate(); err != nil {
		return err
	}
	if resolutionType != dispute.Refund && amount != 0 {
		return errs.NewValueIsInvalidError("amount applies to refund resolutions only")
	}
	c.resolutionType = resolutionType
	c.amount = amount
	return nil
}

func (c *ResolveDisputeCommand) setNote(note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("resolution note")
	}
	c.note = note
	return nil
}
