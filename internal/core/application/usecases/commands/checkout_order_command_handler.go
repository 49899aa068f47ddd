package commands

import (
	"context"
)

// CheckoutOrderCommandHandler handles the checkout transition.
//
// The existence check and the eligibility check surface distinct failures:
// a missing order yields ObjectNotFoundError while an order in an ineligible
// status yields InvalidStateTransitionError, so callers can map them to
// different responses.
type CheckoutOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCheckoutOrderCommandHandler creates a handler for checkout operations.
func NewCheckoutOrderCommandHandler(uowFactory OrderUoWFactory) CheckoutOrderCommandHandler {
	return CheckoutOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the checkout transition, and persists the
// new status in one transaction.
func (h *CheckoutOrderCommandHandler) Handle(ctx context.Context, cmd CheckoutOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.Checkout(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
