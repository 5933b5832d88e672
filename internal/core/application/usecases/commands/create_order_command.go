package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a buyer's checkout of one listing: one unit of
// stock is consumed and an order is opened in pending-payment status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	buyer          account.Actor
	listingID      kernel.UUID
	deliveryMethod order.DeliveryMethod

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to check out a listing.
// The buyer must be an authenticated actor; the delivery method decides the fee.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	buyer account.Actor,
	listingID kernel.UUID,
	deliveryMethod order.DeliveryMethod,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyer(buyer),
		cmd.setListingID(listingID),
		cmd.setDeliveryMethod(deliveryMethod),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Buyer returns the acting buyer.
func (c CreateOrderCommand) Buyer() account.Actor {
	return c.buyer
}

// ListingID returns the listing being bought.
func (c CreateOrderCommand) ListingID() kernel.UUID {
	return c.listingID
}

// DeliveryMethod returns how the article will change hands.
func (c CreateOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBuyer(buyer account.Actor) error {
	if err := buyer.Validate(); err != nil {
		return errs.NewAuthenticationRequiredErrorWithCause("create order", err)
	}
	c.buyer = buyer
	return nil
}

func (c *CreateOrderCommand) setListingID(listingID kernel.UUID) error {
	if err := listingID.Validate(); err != nil {
		return err
	}
	c.listingID = listingID
	return nil
}

func (c *CreateOrderCommand) setDeliveryMethod(deliveryMethod order.DeliveryMethod) error {
	if err := deliveryMethod.Validate(); err != nil {
		return err
	}
	c.deliveryMethod = deliveryMethod
	return nil
}
