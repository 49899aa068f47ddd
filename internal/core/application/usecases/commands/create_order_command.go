package commands

import (
	"errors"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderLine describes one requested order line. Quantity and unit
// price are raw client input: non-positive quantities default to 1 and
// non-positive prices are resolved from the product catalog by the handler.
type CreateOrderLine struct {
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// CreateOrderCommand represents a request to create a new order.
// Contact fields may be blank (they are normalized, not rejected), but the
// owning user must be resolved by the caller: there is no fallback account.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientName  string
	address     string
	phone       string
	governorate string
	userID      int64
	status      order.Status
	lines       []CreateOrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the owner is resolved, that at least one line is present,
// and that every line names a product. Status may be left Unknown to get
// the Pending default.
func NewCreateOrderCommand(
	clientName, address, phone, governorate string,
	userID int64,
	status order.Status,
	lines []CreateOrderLine,
) (CreateOrderCommand, error) {
	if userID <= 0 {
		return CreateOrderCommand{}, order.ErrOwnerIsRequired
	}

	if len(lines) == 0 {
		return CreateOrderCommand{}, order.ErrLinesAreRequired
	}

	for _, line := range lines {
		if line.ProductID <= 0 {
			return CreateOrderCommand{}, errs.NewValueIsRequiredError("produit")
		}
	}

	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		clientName:  clientName,
		address:     address,
		phone:       phone,
		governorate: governorate,
		userID:      userID,
		status:      status,
		lines:       lines,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientName returns the ordering client's display name.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Phone returns the delivery contact phone.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Governorate returns the delivery region.
func (c CreateOrderCommand) Governorate() string {
	return c.governorate
}

// UserID returns the resolved owning user.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

// Status returns the requested initial status, Unknown for the default.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []CreateOrderLine {
	return c.lines
}
