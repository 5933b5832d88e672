package commands

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
)

// AddDisputeMessageCommandHandler handles posting to a case thread.
// The case decides the author's role (buyer, seller or admin) and rejects
// actors with no standing.
type AddDisputeMessageCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewAddDisputeMessageCommandHandler creates a handler for posting case messages.
func NewAddDisputeMessageCommandHandler(uowFactory DisputeUoWFactory) AddDisputeMessageCommandHandler {
	return AddDisputeMessageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-message command.
func (h *AddDisputeMessageCommandHandler) Handle(ctx context.Context, cmd AddDisputeMessageCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	disputeRepo := uow.DisputeRepository()
	d, err := disputeRepo.Get(ctx, cmd.DisputeID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	role, err := d.RoleFor(actor)
	if err != nil {
		return err
	}

	message, err := dispute.NewMessage(actor.ID(), actor.FullName(), role, cmd.Text())
	if err != nil {
		return err
	}

	if err = d.AddMessage(message); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
