package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// CloseDisputeCommandHandler handles archiving a resolved case.
// Closing is an operator-only capability; an unresolved case cannot be closed.
type CloseDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewCloseDisputeCommandHandler creates a handler for closing disputes.
func NewCloseDisputeCommandHandler(uowFactory DisputeUoWFactory) CloseDisputeCommandHandler {
	return CloseDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the close-dispute command.
func (h *CloseDisputeCommandHandler) Handle(ctx context.Context, cmd CloseDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return errs.NewPermissionDeniedError("close dispute")
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

	if err = d.Close(); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
