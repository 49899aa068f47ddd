package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ────────┬──> Paid
//	PendingPayment ─┘
//
// Checkout is the only constrained transition. Delivered and Cancelled exist
// in the enumeration but are reached through administrative updates, which
// are unconstrained writes rather than state-machine transitions.
//
// Status is a value object that validates state transitions and provides
// the wire/storage string representations ("PENDING", "PAID", ...).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// PendingPayment indicates the order awaits payment confirmation.
	PendingPayment

	// Paid indicates the order has been checked out successfully.
	Paid

	// Delivered indicates the order was handed over to the client.
	Delivered

	// Cancelled indicates the order was abandoned.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		PendingPayment: "PENDING_PAYMENT",
		Paid:           "PAID",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		PendingPayment: "PENDING_PAYMENT",
		Paid:           "PAID",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// StatusFromString parses the storage/wire representation of a status.
// Returns an error for anything outside the valid set; the empty string is
// not accepted here, callers decide whether absence means Pending.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("statut", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, PendingPayment, Paid, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("statut", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status ("PENDING", "PAID", ...).
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCheckout checks if the status allows checkout without performing
// the transition.
//
// Valid statuses for checkout:
//   - Pending
//   - PendingPayment
//
// Any other status, including Paid itself, is rejected: checking out an
// already-paid order is an invalid transition, not a no-op.
func (s Status) ValidateCheckout() error {
	if s != Pending && s != PendingPayment {
		return errs.NewInvalidStateTransitionError("checkout", s.String())
	}
	return nil
}

// Checkout transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//   - PendingPayment -> Paid
//
// Returns (Paid, nil) on a valid transition, or (Unknown, error) when the
// transition is not allowed from the current status.
func (s Status) Checkout() (Status, error) {
	if err := s.ValidateCheckout(); err != nil {
		return Unknown, err
	}
	return Paid, nil
}

// IsPendingLike reports whether the status counts as "pending" for the
// pending-orders queries: orders awaiting checkout.
func (s Status) IsPendingLike() bool {
	return s == Pending || s == PendingPayment
}

// PendingStatuses returns the statuses counted as pending, for read-model
// filters and backlog reporting.
func PendingStatuses() []Status {
	pending := make([]Status, 0, 2)
	for status := Pending; status <= Cancelled; status++ {
		if status.IsPendingLike() {
			pending = append(pending, status)
		}
	}
	return pending
}
