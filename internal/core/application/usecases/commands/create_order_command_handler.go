package commands

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for checkout.
// It consumes one unit of stock from the listing and creates the order in the
// same transaction, so a sold-out listing can never produce an order.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence across the
// listing and order aggregates.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Fails when the listing is sold out or when the buyer is its own seller.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	listingRepo := uow.ListingRepository()
	lst, err := listingRepo.Get(ctx, cmd.ListingID())
	if err != nil {
		return err
	}

	if cmd.Buyer().Is(lst.SellerID()) {
		return errs.NewPermissionDeniedError("buy own listing")
	}

	if !lst.IsAvailable() {
		return errs.NewValueIsInvalidError("listing is sold out")
	}

	article := order.ArticleSnapshot{
		ListingID:         lst.ID(),
		Title:             lst.Title(),
		ImageRef:          lst.ImageRef(),
		Price:             lst.Price(),
		SellerID:          lst.SellerID(),
		SellerName:        lst.SellerName(),
		SellerAccountType: lst.SellerAccountType(),
	}

	ord, err := order.NewOrder(cmd.OrderID(), cmd.Buyer(), article, cmd.DeliveryMethod())
	if err != nil {
		return err
	}

	lst.DecrementStock()
	if err = listingRepo.Update(ctx, lst); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
