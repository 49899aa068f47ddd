package ports

import (
	"context"

	"ordering/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for couriers (livreurs).
type CourierRepository interface {
	// Add persists a new courier and returns it with its generated identity.
	Add(ctx context.Context, aggregate *courier.Courier) (*courier.Courier, error)

	// Get retrieves a courier by identifier.
	// Returns ObjectNotFoundError when no such courier exists.
	Get(ctx context.Context, id int64) (*courier.Courier, error)
}
