package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// MarkAsShippedCommandHandler handles shipment recording.
// Only the order's seller may ship, and only after the operator confirmed
// the payment.
type MarkAsShippedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkAsShippedCommandHandler creates a handler for shipment recording.
func NewMarkAsShippedCommandHandler(uowFactory OrderUoWFactory) MarkAsShippedCommandHandler {
	return MarkAsShippedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command.
func (h *MarkAsShippedCommandHandler) Handle(ctx context.Context, cmd MarkAsShippedCommand) error {
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

	if !cmd.Actor().Is(ord.SellerID()) {
		return errs.NewPermissionDeniedError("mark as shipped")
	}

	if err = ord.MarkAsShipped(cmd.TrackingNumber()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
