package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrdersByDateRangeQueryIsNotConstructed = errors.New(
		"GetOrdersByDateRangeQuery must be created via NewGetOrdersByDateRangeQuery constructor",
	)

	// ErrDateRangeIsInvalid is returned when the range end precedes its start.
	ErrDateRangeIsInvalid = errs.NewValueIsInvalidError("plage de dates")
)

// GetOrdersByDateRangeQuery retrieves order summaries created inside a
// closed time interval.
type GetOrdersByDateRangeQuery struct {
	start time.Time
	end   time.Time

	guard guard.ConstructorGuard
}

// NewGetOrdersByDateRangeQuery creates a query for orders created between
// start and end, both inclusive.
func NewGetOrdersByDateRangeQuery(start, end time.Time) (GetOrdersByDateRangeQuery, error) {
	if start.IsZero() || end.IsZero() {
		return GetOrdersByDateRangeQuery{}, errs.NewValueIsRequiredError("plage de dates")
	}

	if end.Before(start) {
		return GetOrdersByDateRangeQuery{}, ErrDateRangeIsInvalid
	}

	return GetOrdersByDateRangeQuery{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByDateRangeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByDateRangeQueryIsNotConstructed)
}

// Start returns the inclusive beginning of the range.
func (q GetOrdersByDateRangeQuery) Start() time.Time {
	return q.start
}

// End returns the inclusive end of the range.
func (q GetOrdersByDateRangeQuery) End() time.Time {
	return q.end
}
