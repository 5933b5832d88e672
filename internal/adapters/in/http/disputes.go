package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// OpenDispute handles POST /api/v1/disputes - a party raises a case against
// an order.
func (s *Server) OpenDispute(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "open dispute")
	if err != nil {
		return respondError(ctx, err)
	}

	var req OpenDisputeRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}

	reason, err := dispute.ReasonFromString(req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	disputeID := kernel.NewUUID()
	cmd, err := commands.NewOpenDisputeCommand(disputeID, orderID, actor, reason, req.Description, req.Evidence)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.openDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: disputeID.String()})
}

// StartInvestigation handles POST /api/v1/disputes/:id/investigate - an
// operator picks the case up.
func (s *Server) StartInvestigation(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "start investigation")
	if err != nil {
		return respondError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartDisputeInvestigationCommand(disputeID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.startInvestigationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddDisputeMessage handles POST /api/v1/disputes/:id/messages - a party or
// an operator appends to the conversation thread.
func (s *Server) AddDisputeMessage(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "add dispute message")
	if err != nil {
		return respondError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req DisputeMessageRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddDisputeMessageCommand(disputeID, actor, req.Text)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addDisputeMessageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveDispute handles POST /api/v1/disputes/:id/resolve - an operator
// decides the case and settles the linked order.
func (s *Server) ResolveDispute(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "resolve dispute")
	if err != nil {
		return respondError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ResolveDisputeRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	resolutionType, err := dispute.ResolutionTypeFromString(req.ResolutionType)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewResolveDisputeCommand(disputeID, actor, resolutionType, req.Amount, req.Note)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.resolveDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseDispute handles POST /api/v1/disputes/:id/close - an operator archives
// a resolved case.
func (s *Server) CloseDispute(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "close dispute")
	if err != nil {
		return respondError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCloseDisputeCommand(disputeID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.closeDisputeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOpenDisputes handles GET /api/v1/disputes/open - the operator queue of
// cases awaiting a decision.
func (s *Server) GetOpenDisputes(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "get open disputes")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOpenDisputesQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	disputes, err := s.getOpenDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DisputeSummary, len(disputes))
	for i, d := range disputes {
		response[i] = DisputeSummary{
			ID:           d.ID.String(),
			OrderID:      d.OrderID.String(),
			OrderNumber:  d.OrderNumber,
			ArticleTitle: d.ArticleTitle,
			Amount:       d.Amount,
			BuyerName:    d.BuyerName,
			SellerName:   d.SellerName,
			Reason:       d.Reason.String(),
			Status:       d.Status.String(),
			OpenedAt:     d.OpenedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetResolvedDisputes handles GET /api/v1/disputes/resolved - the decided
// case archive.
func (s *Server) GetResolvedDisputes(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "get resolved disputes")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetResolvedDisputesQuery(actor)
	if err != nil {
		return respondError(ctx, err)
	}

	disputes, err := s.getResolvedDisputesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DisputeSummary, len(disputes))
	for i, d := range disputes {
		response[i] = DisputeSummary{
			ID:               d.ID.String(),
			OrderNumber:      d.OrderNumber,
			ArticleTitle:     d.ArticleTitle,
			Amount:           d.Amount,
			BuyerName:        d.BuyerName,
			SellerName:       d.SellerName,
			Status:           d.Status.String(),
			ResolutionType:   d.ResolutionType.String(),
			ResolutionAmount: d.ResolutionAmount,
			DecidedAt:        d.DecidedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDisputeByID handles GET /api/v1/disputes/:id - full case detail for its
// parties and operators.
func (s *Server) GetDisputeByID(ctx echo.Context) error {
	actor, err := actorFromContext(ctx, "get dispute")
	if err != nil {
		return respondError(ctx, err)
	}

	disputeID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDisputeByIDQuery(disputeID, actor)
	if err != nil {
		return respondError(ctx, err)
	}

	d, err := s.getDisputeByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	messages := make([]DisputeMessage, len(d.Messages))
	for i, m := range d.Messages {
		messages[i] = DisputeMessage{
			SenderID:   m.SenderID.String(),
			SenderName: m.SenderName,
			SenderRole: m.SenderRole.String(),
			Text:       m.Text,
			SentAt:     m.SentAt,
		}
	}

	var resolution *DisputeResolution
	if d.Resolution != nil {
		resolution = &DisputeResolution{
			Type:      d.Resolution.Type.String(),
			Amount:    d.Resolution.Amount,
			Note:      d.Resolution.Note,
			DecidedBy: d.Resolution.DecidedBy.String(),
			DecidedAt: d.Resolution.DecidedAt,
		}
	}

	return ctx.JSON(http.StatusOK, DisputeDetail{
		ID:           d.ID.String(),
		OrderID:      d.OrderID.String(),
		OrderNumber:  d.OrderNumber,
		ArticleTitle: d.ArticleTitle,
		Amount:       d.Amount,
		BuyerID:      d.BuyerID.String(),
		BuyerName:    d.BuyerName,
		SellerID:     d.SellerID.String(),
		SellerName:   d.SellerName,
		OpenedBy:     d.OpenedBy.String(),
		Reason:       d.Reason.String(),
		Description:  d.Description,
		Evidence:     d.Evidence,
		Status:       d.Status.String(),
		Messages:     messages,
		Resolution:   resolution,
		OpenedAt:     d.OpenedAt,
	})
}
