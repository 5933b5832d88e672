package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// MarkAsDeliveredCommandHandler handles the buyer's receipt confirmation.
// Only the order's buyer may confirm delivery.
type MarkAsDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkAsDeliveredCommandHandler creates a handler for receipt confirmations.
func NewMarkAsDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkAsDeliveredCommandHandler {
	return MarkAsDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the receipt confirmation command.
func (h *MarkAsDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkAsDeliveredCommand) error {
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

	if !cmd.Actor().Is(ord.BuyerID()) {
		return errs.NewPermissionDeniedError("mark as delivered")
	}

	if err = ord.MarkAsDelivered(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
