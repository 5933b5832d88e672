// Package disputerepo provides data transfer objects and mapping functions for dispute persistence.
// This package implements the repository pattern for the dispute domain aggregate, handling
// the conversion between domain entities and database representations.
package disputerepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/dispute"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
)

// DisputeDTO represents the database structure for persisting dispute aggregates.
// The evidence references and the conversation thread are stored as jsonb
// documents, the resolution as flat nullable columns that are either all set
// or all null. The version column carries the optimistic-concurrency token.
type DisputeDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	OrderNumber      string
	ArticleTitle     string
	Amount           int
	BuyerID          uuid.UUID `gorm:"type:uuid;index"`
	BuyerName        string
	SellerID         uuid.UUID `gorm:"type:uuid;index"`
	SellerName       string
	OpenedBy         uuid.UUID `gorm:"type:uuid"`
	Reason           string
	Description      string
	Evidence         []byte `gorm:"type:jsonb"`
	Status           string `gorm:"index"`
	Messages         []byte `gorm:"type:jsonb"`
	ResolutionType   *string
	ResolutionAmount *int
	ResolutionNote   *string
	ResolvedBy       *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt       *time.Time
	OpenedAt         time.Time
	Version          int
}

// TableName specifies the database table name for dispute entities.
// Overrides GORM's default naming convention to use "disputes".
func (DisputeDTO) TableName() string {
	return "disputes"
}

// messageDTO is one thread entry inside the messages jsonb document.
type messageDTO struct {
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sent_at"`
}

// fromDomain converts a dispute domain aggregate to its database representation.
func fromDomain(d *dispute.Dispute) (DisputeDTO, error) {
	evidence, err := json.Marshal(d.Evidence())
	if err != nil {
		return DisputeDTO{}, err
	}

	messageDTOs := make([]messageDTO, 0, len(d.Messages()))
	for _, m := range d.Messages() {
		messageDTOs = append(messageDTOs, messageDTO{
			SenderID:   m.SenderID().String(),
			SenderName: m.SenderName(),
			SenderRole: m.SenderRole().String(),
			Text:       m.Text(),
			SentAt:     m.SentAt(),
		})
	}
	messages, err := json.Marshal(messageDTOs)
	if err != nil {
		return DisputeDTO{}, err
	}

	dto := DisputeDTO{
		ID:           d.ID().Bytes(),
		OrderID:      d.OrderID().Bytes(),
		OrderNumber:  d.OrderNumber(),
		ArticleTitle: d.ArticleTitle(),
		Amount:       d.Amount(),
		BuyerID:      d.BuyerID().Bytes(),
		BuyerName:    d.BuyerName(),
		SellerID:     d.SellerID().Bytes(),
		SellerName:   d.SellerName(),
		OpenedBy:     d.OpenedBy().Bytes(),
		Reason:       d.Reason().String(),
		Description:  d.Description(),
		Evidence:     evidence,
		Status:       d.Status().String(),
		Messages:     messages,
		OpenedAt:     d.OpenedAt(),
		Version:      d.Version(),
	}

	if resolution := d.Resolution(); resolution != nil {
		resolutionType := resolution.Type().String()
		amount := resolution.Amount()
		note := resolution.Note()
		decidedBy := resolution.DecidedBy().Bytes()
		decidedAt := resolution.DecidedAt()

		dto.ResolutionType = &resolutionType
		dto.ResolutionAmount = &amount
		dto.ResolutionNote = &note
		dto.ResolvedBy = &decidedBy
		dto.ResolvedAt = &decidedAt
	}

	return dto, nil
}

// toDomain converts a database DTO to a dispute domain aggregate.
// Reconstructs the thread and the resolution using RestoreDispute.
func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	openedBy, err := kernel.UUIDFromBytes(dto.OpenedBy[:])
	if err != nil {
		return nil, err
	}

	reason, err := dispute.ReasonFromString(dto.Reason)
	if err != nil {
		return nil, err
	}

	status, err := dispute.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var evidence []string
	if len(dto.Evidence) > 0 {
		if err = json.Unmarshal(dto.Evidence, &evidence); err != nil {
			return nil, err
		}
	}

	messages, err := messagesToDomain(dto.Messages)
	if err != nil {
		return nil, err
	}

	resolution, err := resolutionToDomain(dto)
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id,
		orderID,
		dto.OrderNumber,
		dto.ArticleTitle,
		dto.Amount,
		buyerID,
		dto.BuyerName,
		sellerID,
		dto.SellerName,
		openedBy,
		reason,
		dto.Description,
		evidence,
		status,
		messages,
		resolution,
		dto.OpenedAt,
		dto.Version,
	)
}

func messagesToDomain(messagesJSON []byte) ([]dispute.Message, error) {
	if len(messagesJSON) == 0 {
		return nil, nil
	}

	var dtos []messageDTO
	if err := json.Unmarshal(messagesJSON, &dtos); err != nil {
		return nil, err
	}

	messages := make([]dispute.Message, 0, len(dtos))
	for _, dto := range dtos {
		senderID, err := kernel.UUIDFromString(dto.SenderID)
		if err != nil {
			return nil, err
		}

		role, err := dispute.RoleFromString(dto.SenderRole)
		if err != nil {
			return nil, err
		}

		message, err := dispute.RestoreMessage(senderID, dto.SenderName, role, dto.Text, dto.SentAt)
		if err != nil {
			return nil, err
		}

		messages = append(messages, message)
	}

	return messages, nil
}

func resolutionToDomain(dto DisputeDTO) (*dispute.Resolution, error) {
	if dto.ResolutionType == nil {
		return nil, nil
	}

	if dto.ResolutionAmount == nil || dto.ResolutionNote == nil || dto.ResolvedBy == nil || dto.ResolvedAt == nil {
		return nil, errs.NewValueIsInvalidError("resolution columns are incomplete")
	}

	resolutionType, err := dispute.ResolutionTypeFromString(*dto.ResolutionType)
	if err != nil {
		return nil, err
	}

	decidedBy, err := kernel.UUIDFromBytes((*dto.ResolvedBy)[:])
	if err != nil {
		return nil, err
	}

	resolution, err := dispute.RestoreResolution(
		resolutionType, *dto.ResolutionAmount, *dto.ResolutionNote, decidedBy, *dto.ResolvedAt)
	if err != nil {
		return nil, err
	}

	return &resolution, nil
}
