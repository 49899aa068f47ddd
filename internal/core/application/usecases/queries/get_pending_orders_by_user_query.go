package queries

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersByUserQueryIsNotConstructed = errors.New(
		"GetPendingOrdersByUserQuery must be created via NewGetPendingOrdersByUserQuery constructor",
	)
)

// GetPendingOrdersByUserQuery retrieves a user's orders still awaiting
// payment, that is orders in PENDING or PENDING_PAYMENT status.
type GetPendingOrdersByUserQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetPendingOrdersByUserQuery creates a query for a user's unpaid orders.
func NewGetPendingOrdersByUserQuery(userID int64) (GetPendingOrdersByUserQuery, error) {
	if userID <= 0 {
		return GetPendingOrdersByUserQuery{}, errs.NewValueIsRequiredError("user")
	}

	return GetPendingOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersByUserQueryIsNotConstructed)
}

// UserID returns the owner to filter on.
func (q GetPendingOrdersByUserQuery) UserID() int64 {
	return q.userID
}
