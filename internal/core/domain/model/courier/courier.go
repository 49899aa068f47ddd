// Package courier provides the Courier entity (livreur) optionally assigned
// to fulfill orders. Couriers are referenced, never owned, by orders.
package courier

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
)

var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("nom")
)

// Courier represents a delivery agent that can be assigned to orders.
// The optional user ID links the courier to a user account when the agent
// also logs into the system.
type Courier struct {
	id     int64
	name   string
	email  string
	phone  string
	userID *int64

	isConstructed bool
}

// NewCourier creates a courier. The name is required; email and phone are
// normalized contact details, and userID optionally links a user account.
func NewCourier(name, email, phone string, userID *int64) (*Courier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameIsRequired
	}

	if userID != nil && *userID <= 0 {
		return nil, errs.NewValueIsInvalidError("user")
	}

	return &Courier{
		name:          name,
		email:         strings.TrimSpace(email),
		phone:         strings.TrimSpace(phone),
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreCourier reconstructs a persisted courier, including its identity.
// Used by persistence adapters only.
func RestoreCourier(id int64, name, email, phone string, userID *int64) (*Courier, error) {
	c, err := NewCourier(name, email, phone, userID)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Courier was properly constructed through NewCourier.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's database identity, zero until persisted.
func (c *Courier) ID() int64 {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's contact email.
func (c *Courier) Email() string {
	return c.email
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// UserID returns the linked user account, nil when the courier has none.
func (c *Courier) UserID() *int64 {
	return c.userID
}
