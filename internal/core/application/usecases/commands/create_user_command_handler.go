package commands

import (
	"context"

	"ordering/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles user account registration.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new user and returns the stored aggregate with its
// generated identifier and verification code.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newUser, err := user.NewUser(
		cmd.LastName(),
		cmd.FirstName(),
		cmd.Email(),
		cmd.Password(),
		cmd.Phone(),
		cmd.Role(),
		cmd.Address(),
	)
	if err != nil {
		return nil, err
	}

	saved, err := uow.UserRepository().Add(ctx, newUser)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
