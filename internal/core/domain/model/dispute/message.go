package dispute

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role identifies which side of the case a message author stands on.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// RoleBuyer marks a message from the order's buyer.
	RoleBuyer

	// RoleSeller marks a message from the order's seller.
	RoleSeller

	// RoleAdmin marks a message from a platform operator.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "unknown",
		RoleBuyer:   "buyer",
		RoleSeller:  "seller",
		RoleAdmin:   "admin",
	}
}

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleBuyer && r != RoleSeller && r != RoleAdmin {
		return errs.NewValueIsInvalidError("message role is invalid")
	}
	return nil
}

// String returns the wire name of the role ("buyer", "seller", "admin").
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// RoleFromString parses a message role from its wire name.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "buyer":
		return RoleBuyer, nil
	case "seller":
		return RoleSeller, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidError("message role is invalid")
	}
}

// Message is one entry in a dispute's append-only conversation thread.
// Messages are never edited or removed once appended.
type Message struct {
	senderID   kernel.UUID
	senderName string
	senderRole Role
	text       string
	sentAt     time.Time

	isConstructed bool
}

// NewMessage creates a message stamped with the current time.
func NewMessage(senderID kernel.UUID, senderName string, senderRole Role, text string) (Message, error) {
	if err := errors.Join(
		senderID.Validate(),
		senderRole.Validate(),
		func() error {
			if senderName == "" {
				return errs.NewValueIsRequiredError("senderName")
			}
			return nil
		}(),
		func() error {
			if text == "" {
				return errs.NewValueIsRequiredError("message text")
			}
			return nil
		}(),
	); err != nil {
		return Message{}, err
	}

	return Message{
		senderID:      senderID,
		senderName:    senderName,
		senderRole:    senderRole,
		text:          text,
		sentAt:        time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs a message from persistence with its original timestamp.
func RestoreMessage(
	senderID kernel.UUID, senderName string, senderRole Role, text string, sentAt time.Time,
) (Message, error) {
	m, err := NewMessage(senderID, senderName, senderRole, text)
	if err != nil {
		return Message{}, err
	}
	m.sentAt = sentAt
	return m, nil
}

// SenderID returns the author's user identifier.
func (m Message) SenderID() kernel.UUID {
	return m.senderID
}

// SenderName returns the author's display-name snapshot.
func (m Message) SenderName() string {
	return m.senderName
}

// SenderRole returns which side of the case the author stands on.
func (m Message) SenderRole() Role {
	return m.senderRole
}

// Text returns the message body.
func (m Message) Text() string {
	return m.text
}

// SentAt returns when the message was appended.
func (m Message) SentAt() time.Time {
	return m.sentAt
}
