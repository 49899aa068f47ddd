package commands

import (
	"context"
	"errors"

	"ordering/internal/pkg/errs"
)

// AssignCourierCommandHandler wires a courier to an order.
//
// Both sides must exist: a missing order is ObjectNotFoundError, while a
// missing courier is a MissingReferenceError since the order itself is fine
// and only the reference dangles.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies both entities and persists the assignment in one transaction.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewMissingReferenceErrorWithCause("livreur", cmd.CourierID(), err)
		}
		return err
	}

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.AssignCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
