// Package product provides the Product entity (produit) referenced by order
// lines. The product catalog is the pricing source for unpriced order lines.
package product

import (
	"errors"
	"strings"

	"ordering/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrLabelIsRequired is returned when attempting to create a product without a label.
	ErrLabelIsRequired = errs.NewValueIsRequiredError("libelle")

	// ErrPriceIsInvalid is returned when attempting to create a product with a non-positive price.
	ErrPriceIsInvalid = errs.NewValueIsInvalidError("prix")
)

// Product represents a catalog item that order lines reference.
// The current price is the one used to resolve unpriced order lines at save
// time; historical line prices live on the lines themselves.
type Product struct {
	// id is the database identity, zero until persisted
	id int64

	// label is the display name (libelle)
	label string

	// price is the current catalog price, always positive
	price float64

	// stock is the available quantity, never negative
	stock int

	isConstructed bool
}

// NewProduct creates a catalog product. The label must be non-blank and the
// price positive; negative stock is rejected, zero stock is allowed.
func NewProduct(label string, price float64, stock int) (*Product, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrLabelIsRequired
	}

	if price <= 0 {
		return nil, ErrPriceIsInvalid
	}

	if stock < 0 {
		return nil, errs.NewValueIsInvalidError("stock")
	}

	return &Product{
		label:         label,
		price:         price,
		stock:         stock,
		isConstructed: true,
	}, nil
}

// RestoreProduct reconstructs a persisted product, including its identity.
// Used by persistence adapters only.
func RestoreProduct(id int64, label string, price float64, stock int) (*Product, error) {
	product, err := NewProduct(label, price, stock)
	if err != nil {
		return nil, err
	}

	product.id = id
	return product, nil
}

// Validate ensures the Product was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's database identity, zero until persisted.
func (p *Product) ID() int64 {
	return p.id
}

// Label returns the product's display name.
func (p *Product) Label() string {
	return p.label
}

// Price returns the current catalog price.
func (p *Product) Price() float64 {
	return p.price
}

// Stock returns the available quantity.
func (p *Product) Stock() int {
	return p.stock
}
