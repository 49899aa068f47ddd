package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOwnerIsRequired is returned when an order has no resolved owning user.
	// Every order must belong to a user; callers must pass the resolved caller
	// identity explicitly instead of relying on a fallback account.
	ErrOwnerIsRequired = errs.NewValueIsRequiredError("user")

	// ErrLinesAreRequired is returned when an order is created with no order lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lignes de commande")
)

// Order represents a customer purchase request (commande). It is the aggregate
// root that owns the order lines and manages the order lifecycle from creation
// through checkout.
//
// Order follows these invariants:
//   - Must belong to an owning user
//   - Must have at least one order line
//   - Blank contact fields (client name, address, phone, governorate) are
//     normalized to empty strings, never rejected
//   - Status defaults to Pending when unset
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the database identity, zero until persisted
	id int64

	// reference is the opaque public identifier assigned at creation
	reference string

	// clientName is the display name of the ordering client
	clientName string

	// status is the current state in the order lifecycle
	status Status

	// address and phone are the delivery contact details
	address string
	phone   string

	// governorate is the administrative region of the delivery address
	governorate string

	// userID is the owning user, always set
	userID int64

	// courierID is the assigned courier (nil if unassigned)
	courierID *int64

	// lines are the owned order lines, never empty
	lines []*Line

	// createdAt is the creation instant, set by storage on insert
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation and default-filling. This is
// the only way to create a valid Order outside the persistence layer.
//
// Defaulting rules:
//   - blank clientName, address, phone, governorate become ""
//   - Unknown status becomes Pending; any other status must be valid
//
// Rejection rules:
//   - userID must be positive (ErrOwnerIsRequired)
//   - lines must be non-empty (ErrLinesAreRequired) and each line valid
//
// A fresh public reference is generated for every new order.
func NewOrder(clientName, address, phone, governorate string, userID int64, status Status, lines []*Line) (*Order, error) {
	if userID <= 0 {
		return nil, ErrOwnerIsRequired
	}

	if len(lines) == 0 {
		return nil, ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	if status == Unknown {
		status = Pending
	} else if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		reference:     uuid.NewString(),
		clientName:    strings.TrimSpace(clientName),
		status:        status,
		address:       strings.TrimSpace(address),
		phone:         strings.TrimSpace(phone),
		governorate:   strings.TrimSpace(governorate),
		userID:        userID,
		lines:         lines,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs a persisted order, including generated
// identifiers and timestamps. Used by persistence adapters only.
func RestoreOrder(
	id int64,
	reference, clientName string,
	status Status,
	address, phone, governorate string,
	userID int64,
	courierID *int64,
	lines []*Line,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(clientName, address, phone, governorate, userID, status, lines)
	if err != nil {
		return nil, err
	}

	order.id = id
	order.reference = reference
	order.courierID = courierID
	order.createdAt = createdAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. Call it when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their public reference.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.reference == other.reference
}

// ID returns the order's database identity, zero until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// Reference returns the opaque public identifier of the order.
func (o *Order) Reference() string {
	return o.reference
}

// ClientName returns the ordering client's display name.
func (o *Order) ClientName() string {
	return o.clientName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Phone returns the delivery contact phone.
func (o *Order) Phone() string {
	return o.phone
}

// Governorate returns the delivery region.
func (o *Order) Governorate() string {
	return o.governorate
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() int64 {
	return o.userID
}

// CourierID returns the assigned courier's identifier.
// Returns nil if no courier is assigned.
func (o *Order) CourierID() *int64 {
	return o.courierID
}

// Lines returns the owned order lines.
func (o *Order) Lines() []*Line {
	return o.lines
}

// CreatedAt returns the creation instant, zero until persisted.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns the sum of all line totals.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.lines {
		total += line.Total()
	}
	return total
}

// Checkout transitions the order to Paid.
//
// The transition is allowed only from Pending or PendingPayment; any other
// current status yields an InvalidStateTransitionError. Checkout is not
// idempotent: a second checkout of the same order fails.
func (o *Order) Checkout() error {
	newStatus, err := o.status.Checkout()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignCourier sets the courier reference on the order.
//
// Assignment is an unconstrained write: it does not participate in the
// status state machine and may happen in any status. The courier ID must be
// positive; existence is checked by the use case against the courier store.
func (o *Order) AssignCourier(courierID int64) error {
	if courierID <= 0 {
		return errs.NewValueIsRequiredError("livreur")
	}

	o.courierID = &courierID
	return nil
}

// SetClientName replaces the client name, normalizing blanks to "".
func (o *Order) SetClientName(clientName string) {
	o.clientName = strings.TrimSpace(clientName)
}

// SetAddress replaces the delivery address, normalizing blanks to "".
func (o *Order) SetAddress(address string) {
	o.address = strings.TrimSpace(address)
}

// SetPhone replaces the contact phone, normalizing blanks to "".
func (o *Order) SetPhone(phone string) {
	o.phone = strings.TrimSpace(phone)
}

// SetGovernorate replaces the delivery region, normalizing blanks to "".
func (o *Order) SetGovernorate(governorate string) {
	o.governorate = strings.TrimSpace(governorate)
}

// SetStatus overwrites the status as part of an administrative update.
// Unlike Checkout this performs no transition check, only validity.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}
