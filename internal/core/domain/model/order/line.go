package order

import (
	"errors"

	"ordering/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line represents a single product-quantity-price entry within an order.
// It belongs to exactly one order; the back-reference exists only in the
// persistence layer, not in the domain model.
//
// Line invariants:
//   - Must reference a product (positive product ID)
//   - Quantity is always a positive integer; non-positive input is
//     corrected to 1 rather than rejected
//   - Unit price may be non-positive at construction; the creation use case
//     resolves it from the product catalog before the order is persisted
type Line struct {
	// id is the database identity, zero until persisted.
	id int64

	// productID references the ordered product.
	productID int64

	// quantity is the ordered amount, always positive.
	quantity int

	// unitPrice is the price per unit at order time.
	unitPrice float64

	isConstructed bool
}

// NewLine creates an order line for the given product.
//
// A non-positive quantity is silently defaulted to 1. A non-positive unit
// price is accepted as "to be priced": the order creation use case replaces
// it with the product's current price. A missing product reference is the
// only rejection here.
func NewLine(productID int64, quantity int, unitPrice float64) (*Line, error) {
	if productID <= 0 {
		return nil, errs.NewValueIsRequiredError("produit")
	}

	if quantity <= 0 {
		quantity = 1
	}

	return &Line{
		productID:     productID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// RestoreLine reconstructs a persisted line, including its database identity.
// Used by persistence adapters only.
func RestoreLine(id, productID int64, quantity int, unitPrice float64) (*Line, error) {
	line, err := NewLine(productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	line.id = id
	return line, nil
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's database identity, zero until persisted.
func (l *Line) ID() int64 {
	return l.id
}

// ProductID returns the referenced product's identifier.
func (l *Line) ProductID() int64 {
	return l.productID
}

// Quantity returns the ordered amount.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit.
func (l *Line) UnitPrice() float64 {
	return l.unitPrice
}

// NeedsPricing reports whether the unit price still has to be resolved from
// the product catalog.
func (l *Line) NeedsPricing() bool {
	return l.unitPrice <= 0
}

// SetUnitPrice overwrites the unit price with a resolved catalog price.
// The resolved price must be positive.
func (l *Line) SetUnitPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("prix unitaire")
	}

	l.unitPrice = price
	return nil
}

// Total returns quantity times unit price.
func (l *Line) Total() float64 {
	return float64(l.quantity) * l.unitPrice
}
