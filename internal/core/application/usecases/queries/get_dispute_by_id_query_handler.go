package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDisputeByIDQueryHandler reads one case's full detail from the database.
// Access is limited to the case's buyer, its seller and operators.
type GetDisputeByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetDisputeByIDQueryHandler creates a handler for case detail queries.
func NewGetDisputeByIDQueryHandler(db *gorm.DB) GetDisputeByIDQueryHandler {
	return GetDisputeByIDQueryHandler{db: db}
}

type disputeMessageRow struct {
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// Handle executes the query.
func (h GetDisputeByIDQueryHandler) Handle(
	ctx context.Context,
	query GetDisputeByIDQuery,
) (GetDisputeByIDQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			order_number,
			article_title,
			amount,
			buyer_id,
			buyer_name,
			seller_id,
			seller_name,
			opened_by,
			reason,
			description,
			evidence,
			status,
			messages,
			resolution_type,
			resolution_amount,
			resolution_note,
			resolved_by,
			resolved_at,
			opened_at
		FROM disputes
		WHERE id = ?
	`, query.DisputeID().String()).Row()

	var resp GetDisputeByIDQueryResponse
	var id, orderID, buyerID, sellerID, openedBy uuid.UUID
	var reason, status string
	var evidenceJSON, messagesJSON []byte
	var resolutionType, resolutionNote sql.NullString
	var resolutionAmount sql.NullInt64
	var resolvedBy uuid.NullUUID
	var resolvedAt sql.NullTime

	err := row.Scan(
		&id,
		&orderID,
		&resp.OrderNumber,
		&resp.ArticleTitle,
		&resp.Amount,
		&buyerID,
		&resp.BuyerName,
		&sellerID,
		&resp.SellerName,
		&openedBy,
		&reason,
		&resp.Description,
		&evidenceJSON,
		&status,
		&messagesJSON,
		&resolutionType,
		&resolutionAmount,
		&resolutionNote,
		&resolvedBy,
		&resolvedAt,
		&resp.OpenedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDisputeByIDQueryResponse{}, errs.NewObjectNotFoundError("disputeID", query.DisputeID())
	}
	if err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}
	if resp.OpenedBy, err = kernel.UUIDFromBytes(openedBy[:]); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}

	actor := query.Actor()
	if !actor.Is(resp.BuyerID) && !actor.Is(resp.SellerID) && !actor.IsAdmin() {
		return GetDisputeByIDQueryResponse{}, errs.NewPermissionDeniedError("get dispute")
	}

	if resp.Reason, err = dispute.ReasonFromString(reason); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}
	if resp.Status, err = dispute.StatusFromString(status); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}

	if len(evidenceJSON) > 0 {
		if err = json.Unmarshal(evidenceJSON, &resp.Evidence); err != nil {
			return GetDisputeByIDQueryResponse{}, err
		}
	}

	if resp.Messages, err = parseMessageRows(messagesJSON); err != nil {
		return GetDisputeByIDQueryResponse{}, err
	}

	if resolutionType.Valid {
		resolution, resErr := parseResolutionColumns(
			resolutionType.String, int(resolutionAmount.Int64), resolutionNote.String, resolvedBy, resolvedAt)
		if resErr != nil {
			return GetDisputeByIDQueryResponse{}, resErr
		}
		resp.Resolution = resolution
	}

	return resp, nil
}

func parseMessageRows(messagesJSON []byte) ([]DisputeMessageView, error) {
	if len(messagesJSON) == 0 {
		return nil, nil
	}

	var rows []disputeMessageRow
	if err := json.Unmarshal(messagesJSON, &rows); err != nil {
		return nil, err
	}

	messages := make([]DisputeMessageView, 0, len(rows))
	for _, r := range rows {
		senderID, err := kernel.UUIDFromString(r.SenderID)
		if err != nil {
			return nil, err
		}
		role, err := dispute.RoleFromString(r.SenderRole)
		if err != nil {
			return nil, err
		}
		messages = append(messages, DisputeMessageView{
			SenderID:   senderID,
			SenderName: r.SenderName,
			SenderRole: role,
			Text:       r.Text,
			SentAt:     r.SentAt,
		})
	}
	return messages, nil
}

func parseResolutionColumns(
	resolutionType string, amount int, note string, resolvedBy uuid.NullUUID, resolvedAt sql.NullTime,
) (*DisputeResolutionView, error) {
	parsedType, err := dispute.ResolutionTypeFromString(resolutionType)
	if err != nil {
		return nil, err
	}

	decidedBy, err := kernel.UUIDFromBytes(resolvedBy.UUID[:])
	if err != nil {
		return nil, err
	}

	return &DisputeResolutionView{
		Type:      parsedType,
		Amount:    amount,
		Note:      note,
		DecidedBy: decidedBy,
		DecidedAt: resolvedAt.Time,
	}, nil
}
