package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// StartDisputeInvestigationCommandHandler handles an operator picking a case up.
// Investigation is an operator-only capability.
type StartDisputeInvestigationCommandHandler struct {
	uowFactory DisputeUoWFactory
}

// NewStartDisputeInvestigationCommandHandler creates a handler for starting investigations.
func NewStartDisputeInvestigationCommandHandler(uowFactory DisputeUoWFactory) StartDisputeInvestigationCommandHandler {
	return StartDisputeInvestigationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-investigation command.
func (h *StartDisputeInvestigationCommandHandler) Handle(
	ctx context.Context, cmd StartDisputeInvestigationCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsAdmin() {
		return errs.NewPermissionDeniedError("start dispute investigation")
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

	if err = d.StartInvestigation(); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
