package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCheckoutOrderCommandIsNotConstructed = errors.New(
		"CheckoutOrderCommand must be created via NewCheckoutOrderCommand constructor",
	)
)

// CheckoutOrderCommand represents a request to transition an order to PAID.
type CheckoutOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCheckoutOrderCommand creates a checkout command for the given order.
func NewCheckoutOrderCommand(orderID int64) (CheckoutOrderCommand, error) {
	if orderID <= 0 {
		return CheckoutOrderCommand{}, errs.NewValueIsRequiredError("commande")
	}

	return CheckoutOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutOrderCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutOrderCommandIsNotConstructed)
}

// OrderID returns the order to check out.
func (c CheckoutOrderCommand) OrderID() int64 {
	return c.orderID
}
