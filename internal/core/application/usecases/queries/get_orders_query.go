// Package queries contains read-only operations for retrieving system state.
// Implements the Query side of the CQRS pattern with raw SQL projections
// that bypass the domain model for read performance.
package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves summary rows for every order.
type GetOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list all orders.
// This is a parameterless query that fetches every order summary.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is the order listing read model.
// Status carries the wire text ("PENDING", "PAID", ...) and defaults to
// "PENDING" for legacy rows persisted without one. CourierID is nil when
// no courier has been assigned.
type OrderSummaryResponse struct {
	ID         int64
	ClientName string
	Status     string
	Address    string
	Phone      string
	CourierID  *int64
}
