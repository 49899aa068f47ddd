package queries

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersByUserQueryIsNotConstructed = errors.New(
		"GetOrdersByUserQuery must be created via NewGetOrdersByUserQuery constructor",
	)
)

// GetOrdersByUserQuery retrieves order summaries owned by one user.
type GetOrdersByUserQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetOrdersByUserQuery creates a query for all of a user's orders.
func NewGetOrdersByUserQuery(userID int64) (GetOrdersByUserQuery, error) {
	if userID <= 0 {
		return GetOrdersByUserQuery{}, errs.NewValueIsRequiredError("user")
	}

	return GetOrdersByUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByUserQueryIsNotConstructed)
}

// UserID returns the owner to filter on.
func (q GetOrdersByUserQuery) UserID() int64 {
	return q.userID
}
