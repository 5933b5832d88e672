package commands

import (
	"context"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ResolveDisputeCommandHandler handles an operator resolving a case.
// The decision and the resulting order settlement land in the same
// transaction, so a resolved case can never leave its order frozen.
type ResolveDisputeCommandHandler struct {
	uowFactory CaseUoWFactory
	settler    services.DisputeSettler
}

// NewResolveDisputeCommandHandler creates a handler for case resolution.
// Requires a CaseUoWFactory for transactional persistence across the dispute
// and order aggregates.
func NewResolveDisputeCommandHandler(uowFactory CaseUoWFactory) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		settler:    services.NewDisputeSettler(),
	}
}

// Handle processes the resolve-dispute command.
func (h *ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.IsAdmin() {
		return errs.NewPermissionDeniedError("resolve dispute")
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

	switch cmd.ResolutionType() {
	case dispute.Refund:
		err = d.ResolveWithRefund(cmd.Amount(), cmd.Note(), actor.ID())
	case dispute.BuyerFavor:
		err = d.ResolveForBuyer(cmd.Note(), actor.ID())
	case dispute.SellerFavor:
		err = d.ResolveForSeller(cmd.Note(), actor.ID())
	default:
		err = errs.NewValueIsInvalidError("resolution type is invalid")
	}
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, d.OrderID())
	if err != nil {
		return err
	}

	if err = h.settler.Settle(d, ord); err != nil {
		return err
	}

	if err = disputeRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
