package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies administrative partial updates to an order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the supplied fields, persists, and returns
// the updated aggregate. A missing order yields ObjectNotFoundError.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.ClientName() != nil {
		existing.SetClientName(*cmd.ClientName())
	}
	if cmd.Address() != nil {
		existing.SetAddress(*cmd.Address())
	}
	if cmd.Phone() != nil {
		existing.SetPhone(*cmd.Phone())
	}
	if cmd.Governorate() != nil {
		existing.SetGovernorate(*cmd.Governorate())
	}
	if cmd.Status() != nil {
		if err = existing.SetStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
