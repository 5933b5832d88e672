// Package account provides the acting-user model for the marketplace core.
// The core does not authenticate anyone itself; an Actor is the snapshot of an
// already-authenticated session handed in by the outer layer. Operations use
// it to stamp buyer/seller/resolver identities and to decide whether the
// acting party holds the capability an operation requires.
package account

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrActorIsNotConstructed is returned when an Actor was not created through NewActor.
	ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")
)

// Type classifies a seller account and determines its commission rate.
type Type int

const (
	// UnknownType represents an invalid or undefined account type.
	UnknownType Type = iota

	// Individual is a private person selling occasionally. Commission 8%.
	Individual

	// Business is a registered shop. Commission 5%.
	Business
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "Unknown",
		Individual:  "individual",
		Business:    "business",
	}
}

// Validate checks that the account type is one of the defined values.
func (t Type) Validate() error {
	if t != Individual && t != Business {
		return errs.NewValueIsInvalidErrorWithCause("account type is invalid",
			fmt.Errorf("%d is not a valid account type", t))
	}
	return nil
}

// String returns the wire name of the account type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// CommissionRate returns the platform commission rate for the account type:
// 8% for individual sellers, 5% for business sellers.
func (t Type) CommissionRate() float64 {
	if t == Business {
		return 0.05
	}
	return 0.08
}

// TypeFromString parses an account type from its wire name.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "individual":
		return Individual, nil
	case "business":
		return Business, nil
	default:
		return UnknownType, errs.NewValueIsInvalidErrorWithCause("account type is invalid",
			fmt.Errorf("%q is not a valid account type", s))
	}
}

// Actor is the authenticated user on whose behalf an operation runs.
// It is a value object: a snapshot of the session, not a persisted aggregate.
type Actor struct {
	id          kernel.UUID
	fullName    string
	phone       string
	city        string
	accountType Type
	isAdmin     bool

	isConstructed bool
}

// NewActor creates a validated Actor from session data.
func NewActor(id kernel.UUID, fullName, phone, city string, accountType Type, isAdmin bool) (Actor, error) {
	actor := Actor{
		phone:         phone,
		city:          city,
		isAdmin:       isAdmin,
		isConstructed: true,
	}

	if err := errors.Join(
		actor.setID(id),
		actor.setFullName(fullName),
		actor.setAccountType(accountType),
	); err != nil {
		return Actor{}, err
	}

	return actor, nil
}

// Validate ensures the Actor was properly constructed through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// FullName returns the actor's display name.
func (a Actor) FullName() string {
	return a.fullName
}

// Phone returns the actor's contact phone number.
func (a Actor) Phone() string {
	return a.phone
}

// City returns the actor's city.
func (a Actor) City() string {
	return a.city
}

// AccountType returns the actor's account type.
func (a Actor) AccountType() Type {
	return a.accountType
}

// IsAdmin reports whether the actor holds platform-operator privileges.
func (a Actor) IsAdmin() bool {
	return a.isAdmin
}

// Is reports whether the actor is the user with the given identifier.
func (a Actor) Is(userID kernel.UUID) bool {
	return a.id.IsEqual(userID)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	a.fullName = fullName
	return nil
}

func (a *Actor) setAccountType(accountType Type) error {
	if err := accountType.Validate(); err != nil {
		return err
	}
	a.accountType = accountType
	return nil
}
