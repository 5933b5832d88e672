package commands

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/pkg/errs"
)

// OpenDisputeCommandHandler handles opening a case against an order.
// Only the order's parties may open one. The case and the order's frozen
// status land in the same transaction.
type OpenDisputeCommandHandler struct {
	uowFactory CaseUoWFactory
}

// NewOpenDisputeCommandHandler creates a handler for opening disputes.
// Requires a CaseUoWFactory for transactional persistence across the dispute
// and order aggregates.
func NewOpenDisputeCommandHandler(uowFactory CaseUoWFactory) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the open-dispute command.
func (h *OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) error {
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

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Is(ord.BuyerID()) && !actor.Is(ord.SellerID()) {
		return errs.NewPermissionDeniedError("open dispute")
	}

	if err = ord.OpenDispute(cmd.Reason().String()); err != nil {
		return err
	}

	d, err := dispute.NewDispute(cmd.DisputeID(), ord, actor, cmd.Reason(), cmd.Description(), cmd.Evidence())
	if err != nil {
		return err
	}

	if err = uow.DisputeRepository().Add(ctx, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
