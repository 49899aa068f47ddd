package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	label string
	price float64
	stock int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// The label must be non-blank and the price strictly positive.
func NewCreateProductCommand(label string, price float64, stock int) (CreateProductCommand, error) {
	if strings.TrimSpace(label) == "" {
		return CreateProductCommand{}, product.ErrLabelIsRequired
	}

	if price <= 0 {
		return CreateProductCommand{}, product.ErrPriceIsInvalid
	}

	return CreateProductCommand{
		label: label,
		price: price,
		stock: stock,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Label returns the product's display label.
func (c CreateProductCommand) Label() string {
	return c.label
}

// Price returns the product's unit price.
func (c CreateProductCommand) Price() float64 {
	return c.price
}

// Stock returns the initial stock quantity.
func (c CreateProductCommand) Stock() int {
	return c.stock
}
