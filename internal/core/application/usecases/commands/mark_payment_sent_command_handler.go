package commands

import (
	"context"

	"marketplace/internal/pkg/errs"
)

// MarkPaymentSentCommandHandler handles the buyer's payment self-report.
// Only the order's buyer may report the transfer.
type MarkPaymentSentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPaymentSentCommandHandler creates a handler for payment self-reports.
func NewMarkPaymentSentCommandHandler(uowFactory OrderUoWFactory) MarkPaymentSentCommandHandler {
	return MarkPaymentSentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment self-report command.
func (h *MarkPaymentSentCommandHandler) Handle(ctx context.Context, cmd MarkPaymentSentCommand) error {
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
		return errs.NewPermissionDeniedError("mark payment sent")
	}

	if err = ord.MarkPaymentSent(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
