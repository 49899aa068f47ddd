package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/courier"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
)

// CreateCourierCommand represents a request to register a new courier.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name   string
	email  string
	phone  string
	userID *int64

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a courier.
// The name must be non-blank; userID optionally links a user account.
func NewCreateCourierCommand(name, email, phone string, userID *int64) (CreateCourierCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreateCourierCommand{}, courier.ErrNameIsRequired
	}

	return CreateCourierCommand{
		name:   name,
		email:  email,
		phone:  phone,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the courier's display name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Email returns the courier's contact email.
func (c CreateCourierCommand) Email() string {
	return c.email
}

// Phone returns the courier's contact phone.
func (c CreateCourierCommand) Phone() string {
	return c.phone
}

// UserID returns the linked user account, nil when there is none.
func (c CreateCourierCommand) UserID() *int64 {
	return c.userID
}
