package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - checks out a listing.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "create order")
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return respondError(ctx, err)
	}

	deliveryMethod, err := order.DeliveryMethodFromString(req.DeliveryMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor, listingID, deliveryMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// MarkPaymentSent handles POST /api/v1/orders/:id/payment-sent - the buyer
// reports the manual transfer went out.
func (s *Server) MarkPaymentSent(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "mark payment sent")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkPaymentSentCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markPaymentSentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPayment handles POST /api/v1/orders/:id/confirm-payment - an operator
// verifies the transfer against the order number.
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "confirm payment")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmPaymentCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.confirmPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/:id/ship - the seller hands the
// article to the carrier and records the tracking number.
func (s *Server) ShipOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "mark as shipped")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ShipOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewMarkAsShippedCommand(orderID, actor, req.TrackingNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markAsShippedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAsDelivered handles POST /api/v1/orders/:id/delivered - the buyer
// confirms physical receipt.
func (s *Server) MarkAsDelivered(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "mark as delivered")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkAsDeliveredCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markAsDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - the buyer finishes
// the order, releasing the seller payout.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "complete order")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - a party or an operator
// aborts the order with a reason.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "cancel order")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUserOrders handles GET /api/v1/orders - the acting user's purchases and sales.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "get user orders")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetUserOrdersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:              o.ID.String(),
			OrderNumber:     o.OrderNumber,
			ListingTitle:    o.ListingTitle,
			ListingImageRef: o.ListingImageRef,
			BuyerName:       o.BuyerName,
			SellerName:      o.SellerName,
			TotalAmount:     o.TotalAmount,
			Status:          o.Status.String(),
			CreatedAt:       o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingConfirmationOrders handles GET /api/v1/orders/pending-confirmation -
// the operator queue of transfers awaiting verification.
func (s *Server) GetPendingConfirmationOrders(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "get pending confirmation orders")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetPendingConfirmationOrdersQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]PendingConfirmationOrder, len(orders))
	for i, o := range orders {
		response[i] = PendingConfirmationOrder{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			BuyerName:   o.BuyerName,
			BuyerPhone:  o.BuyerPhone,
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /api/v1/orders/:id - full order detail for its
// parties and operators.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "get order")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetail{
		ID:                 o.ID.String(),
		OrderNumber:        o.OrderNumber,
		BuyerID:            o.BuyerID.String(),
		BuyerName:          o.BuyerName,
		BuyerPhone:         o.BuyerPhone,
		SellerID:           o.SellerID.String(),
		SellerName:         o.SellerName,
		ListingID:          o.ListingID.String(),
		ListingTitle:       o.ListingTitle,
		ListingImageRef:    o.ListingImageRef,
		ArticlePrice:       o.ArticlePrice,
		DeliveryFee:        o.DeliveryFee,
		Commission:         o.Commission,
		TotalAmount:        o.TotalAmount,
		DeliveryMethod:     o.DeliveryMethod.String(),
		Status:             o.Status.String(),
		TrackingNumber:     o.TrackingNumber,
		CancellationReason: o.CancellationReason,
		DisputeReason:      o.DisputeReason,
		CreatedAt:          o.CreatedAt,
		PaidAt:             o.PaidAt,
		ShippedAt:          o.ShippedAt,
		DeliveredAt:        o.DeliveredAt,
		CompletedAt:        o.CompletedAt,
	})
}
