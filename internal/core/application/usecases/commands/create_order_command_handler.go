package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies every line's product reference against the catalog, resolves
// unpriced lines to the product's current price, and persists the order
// with its lines in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the persisted
// aggregate with its generated identifiers.
//
// A line referencing an unknown product fails the whole command with a
// MissingReferenceError; nothing is persisted in that case.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	productRepo := uow.ProductRepository()

	lines := make([]*order.Line, 0, len(cmd.Lines()))
	for _, requested := range cmd.Lines() {
		line, err := order.NewLine(requested.ProductID, requested.Quantity, requested.UnitPrice)
		if err != nil {
			return nil, err
		}

		product, err := productRepo.Get(ctx, requested.ProductID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewMissingReferenceErrorWithCause("produit", requested.ProductID, err)
			}
			return nil, err
		}

		if line.NeedsPricing() {
			if err = line.SetUnitPrice(product.Price()); err != nil {
				return nil, err
			}
		}

		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		cmd.ClientName(),
		cmd.Address(),
		cmd.Phone(),
		cmd.Governorate(),
		cmd.UserID(),
		cmd.Status(),
		lines,
	)
	if err != nil {
		return nil, err
	}

	saved, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return saved, nil
}
