package queries

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its lines and assigned courier.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order by identifier.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("commande")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}

// OrderLineResponse is the order line read model.
type OrderLineResponse struct {
	ID        int64
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// CourierSummaryResponse is the nested courier read model on a detailed order.
type CourierSummaryResponse struct {
	ID    int64
	Name  string
	Phone string
}

// OrderDetailResponse is the detailed order read model: the full order row,
// its lines, and the assigned courier when there is one.
type OrderDetailResponse struct {
	ID          int64
	Reference   string
	ClientName  string
	Status      string
	Address     string
	Phone       string
	Governorate string
	UserID      int64
	Courier     *CourierSummaryResponse
	Lines       []OrderLineResponse
	CreatedAt   time.Time
}
