package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrAssignCourierCommandIsNotConstructed = errors.New(
		"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
	)
)

// AssignCourierCommand represents a request to assign a courier to an order.
// Assignment is an unconstrained write, allowed in any order status.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	courierID int64

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates an assignment command.
func NewAssignCourierCommand(orderID, courierID int64) (AssignCourierCommand, error) {
	if orderID <= 0 {
		return AssignCourierCommand{}, errs.NewValueIsRequiredError("commande")
	}

	if courierID <= 0 {
		return AssignCourierCommand{}, errs.NewValueIsRequiredError("livreur")
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignCourierCommand) OrderID() int64 {
	return c.orderID
}

// CourierID returns the courier to assign.
func (c AssignCourierCommand) CourierID() int64 {
	return c.courierID
}
