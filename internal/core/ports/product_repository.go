package ports

import (
	"context"

	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog.
// Order creation uses Get to verify line references and to resolve current
// prices for unpriced lines.
type ProductRepository interface {
	// Add persists a new product and returns it with its generated identity.
	Add(ctx context.Context, aggregate *product.Product) (*product.Product, error)

	// Get retrieves a product by identifier.
	// Returns ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id int64) (*product.Product, error)
}
