package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are always written as one unit; implementations
// must persist or fail them together.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines and returns the
	// stored aggregate carrying the generated identifiers and timestamps.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order aggregate.
	// Returns ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and, cascading, its lines.
	// Returns ObjectNotFoundError when no row was affected.
	Delete(ctx context.Context, id int64) error
}
