package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new user account.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	lastName  string
	firstName string
	email     string
	password  string
	phone     string
	role      string
	address   string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user. The email
// must be non-blank; every other field is optional.
func NewCreateUserCommand(
	lastName, firstName, email, password, phone, role, address string,
) (CreateUserCommand, error) {
	if strings.TrimSpace(email) == "" {
		return CreateUserCommand{}, user.ErrEmailIsRequired
	}

	return CreateUserCommand{
		lastName:  lastName,
		firstName: firstName,
		email:     email,
		password:  password,
		phone:     phone,
		role:      role,
		address:   address,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// LastName returns the user's last name.
func (c CreateUserCommand) LastName() string {
	return c.lastName
}

// FirstName returns the user's first name.
func (c CreateUserCommand) FirstName() string {
	return c.firstName
}

// Email returns the user's email address.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Password returns the user's password hash.
func (c CreateUserCommand) Password() string {
	return c.password
}

// Phone returns the user's phone number.
func (c CreateUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested account role.
func (c CreateUserCommand) Role() string {
	return c.role
}

// Address returns the user's address.
func (c CreateUserCommand) Address() string {
	return c.address
}
