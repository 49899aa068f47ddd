// Package order provides domain entities and business logic for order
// management. It implements the Order aggregate root (commande) with its
// owned order lines and lifecycle state machine.
//
// The package includes:
//   - Order: The aggregate root owning client details, status, and order lines
//   - Line: A single product-quantity-price entry within an order
//   - Status: A state machine that enforces the checkout transition
//
// Key business rules:
//   - Orders must have an owning user and at least one order line
//   - Blank contact fields are normalized to empty strings, not rejected
//   - Non-positive line quantities are corrected to 1
//   - Non-positive unit prices are resolved from the product catalog at save time
//   - Checkout is allowed only from PENDING or PENDING_PAYMENT and leads to PAID
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
