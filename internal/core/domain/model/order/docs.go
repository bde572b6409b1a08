// Package order provides domain entities and business logic for customer
// orders. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items and lifecycle
//   - Status: A state machine that enforces forward-only status transitions
//
// Key business rules:
//   - Orders must have a positive identifier and a non-empty item id sequence
//   - Order status follows a fixed workflow: Preparing -> Out for Delivery -> Delivered
//   - Status only ever advances forward, one step at a time; Delivered is terminal
//   - Item ids reference the catalog weakly: an order keeps its ids even if
//     the referenced catalog entries later change or disappear
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
