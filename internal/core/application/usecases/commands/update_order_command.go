package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents an administrative partial update of an order.
// Nil fields are left untouched; supplied fields replace the stored values.
// Status updates here are unconstrained writes, not state-machine transitions.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	clientName  *string
	address     *string
	phone       *string
	governorate *string
	status      *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial-update command for the given order.
// A supplied status must be a valid member of the enumeration.
func NewUpdateOrderCommand(
	orderID int64,
	clientName, address, phone, governorate *string,
	status *order.Status,
) (UpdateOrderCommand, error) {
	if orderID <= 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("commande")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	return UpdateOrderCommand{
		orderID:     orderID,
		clientName:  clientName,
		address:     address,
		phone:       phone,
		governorate: governorate,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// ClientName returns the replacement client name, nil to keep the stored value.
func (c UpdateOrderCommand) ClientName() *string {
	return c.clientName
}

// Address returns the replacement address, nil to keep the stored value.
func (c UpdateOrderCommand) Address() *string {
	return c.address
}

// Phone returns the replacement phone, nil to keep the stored value.
func (c UpdateOrderCommand) Phone() *string {
	return c.phone
}

// Governorate returns the replacement region, nil to keep the stored value.
func (c UpdateOrderCommand) Governorate() *string {
	return c.governorate
}

// Status returns the replacement status, nil to keep the stored value.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}
