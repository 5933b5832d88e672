// Package http exposes the marketplace use cases over a JSON REST API.
// It translates HTTP requests into commands and queries, and domain error
// families into HTTP status codes. Authentication happens upstream; the
// gateway forwards the verified session as X-User-* headers.
package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Order command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	markPaymentSentHandler commands.MarkPaymentSentCommandHandler
	confirmPaymentHandler  commands.ConfirmPaymentCommandHandler
	markAsShippedHandler   commands.MarkAsShippedCommandHandler
	markAsDeliveredHandler commands.MarkAsDeliveredCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	// Dispute command handlers
	openDisputeHandler        commands.OpenDisputeCommandHandler
	startInvestigationHandler commands.StartDisputeInvestigationCommandHandler
	addDisputeMessageHandler  commands.AddDisputeMessageCommandHandler
	resolveDisputeHandler     commands.ResolveDisputeCommandHandler
	closeDisputeHandler       commands.CloseDisputeCommandHandler

	// Query handlers
	getUserOrdersHandler       queries.GetUserOrdersQueryHandler
	getPendingOrdersHandler    queries.GetPendingConfirmationOrdersQueryHandler
	getOrderByIDHandler        queries.GetOrderByIDQueryHandler
	getOpenDisputesHandler     queries.GetOpenDisputesQueryHandler
	getResolvedDisputesHandler queries.GetResolvedDisputesQueryHandler
	getDisputeByIDHandler      queries.GetDisputeByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	markPaymentSentHandler commands.MarkPaymentSentCommandHandler,
	confirmPaymentHandler commands.ConfirmPaymentCommandHandler,
	markAsShippedHandler commands.MarkAsShippedCommandHandler,
	markAsDeliveredHandler commands.MarkAsDeliveredCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	openDisputeHandler commands.OpenDisputeCommandHandler,
	startInvestigationHandler commands.StartDisputeInvestigationCommandHandler,
	addDisputeMessageHandler commands.AddDisputeMessageCommandHandler,
	resolveDisputeHandler commands.ResolveDisputeCommandHandler,
	closeDisputeHandler commands.CloseDisputeCommandHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingConfirmationOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOpenDisputesHandler queries.GetOpenDisputesQueryHandler,
	getResolvedDisputesHandler queries.GetResolvedDisputesQueryHandler,
	getDisputeByIDHandler queries.GetDisputeByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		markPaymentSentHandler:     markPaymentSentHandler,
		confirmPaymentHandler:      confirmPaymentHandler,
		markAsShippedHandler:       markAsShippedHandler,
		markAsDeliveredHandler:     markAsDeliveredHandler,
		completeOrderHandler:       completeOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		openDisputeHandler:         openDisputeHandler,
		startInvestigationHandler:  startInvestigationHandler,
		addDisputeMessageHandler:   addDisputeMessageHandler,
		resolveDisputeHandler:      resolveDisputeHandler,
		closeDisputeHandler:        closeDisputeHandler,
		getUserOrdersHandler:       getUserOrdersHandler,
		getPendingOrdersHandler:    getPendingOrdersHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getOpenDisputesHandler:     getOpenDisputesHandler,
		getResolvedDisputesHandler: getResolvedDisputesHandler,
		getDisputeByIDHandler:      getDisputeByIDHandler,
	}
}

// RegisterRoutes binds all marketplace endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetUserOrders)
	api.GET("/orders/pending-confirmation", s.GetPendingConfirmationOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.POST("/orders/:id/payment-sent", s.MarkPaymentSent)
	api.POST("/orders/:id/confirm-payment", s.ConfirmPayment)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/delivered", s.MarkAsDelivered)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.POST("/disputes", s.OpenDispute)
	api.GET("/disputes/open", s.GetOpenDisputes)
	api.GET("/disputes/resolved", s.GetResolvedDisputes)
	api.GET("/disputes/:id", s.GetDisputeByID)
	api.POST("/disputes/:id/investigate", s.StartInvestigation)
	api.POST("/disputes/:id/messages", s.AddDisputeMessage)
	api.POST("/disputes/:id/resolve", s.ResolveDispute)
	api.POST("/disputes/:id/close", s.CloseDispute)
}

// actorFromContext rebuilds the acting user from the session headers the
// gateway forwards. A missing or malformed session yields an authentication
// error, which the error mapping turns into 401.
func actorFromContext(ctx echo.Context, operation string) (account.Actor, error) {
	header := ctx.Request().Header

	userID, err := kernel.UUIDFromString(header.Get("X-User-Id"))
	if err != nil {
		return account.Actor{}, errs.NewAuthenticationRequiredErrorWithCause(operation, err)
	}

	accountType, err := account.TypeFromString(header.Get("X-User-Account-Type"))
	if err != nil {
		return account.Actor{}, errs.NewAuthenticationRequiredErrorWithCause(operation, err)
	}

	actor, err := account.NewActor(
		userID,
		header.Get("X-User-Name"),
		header.Get("X-User-Phone"),
		header.Get("X-User-City"),
		accountType,
		header.Get("X-User-Admin") == "true",
	)
	if err != nil {
		return account.Actor{}, errs.NewAuthenticationRequiredErrorWithCause(operation, err)
	}

	return actor, nil
}

// respondError maps a domain error onto its HTTP status and writes the body.
func respondError(ctx echo.Context, err error) error {
	code := statusForError(err)
	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}

// statusForError translates the domain error families into HTTP statuses:
// authentication 401, permission 403, missing objects 404, state conflicts
// and stale writes 409, invalid values 422.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
