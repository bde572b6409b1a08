// Package menu provides domain entities and business logic for the vendor's
// sellable catalog. It implements the Item aggregate root together with the
// Category value object and the Candidate value object used for upserts.
//
// The package includes:
//   - Item: The aggregate root representing one sellable catalog entry
//   - Category: A fixed enumeration of catalog sections (Pizza, Drinks, Dessert)
//   - Candidate: A validated proposed entry that has no identifier yet
//
// Key business rules:
//   - Items must have a non-empty name and a price strictly greater than 0
//   - The category must be one of the fixed enumerated set
//   - The name is the upsert key: a later candidate with the same name
//     updates the existing item's price and category in place
//   - An item's identifier is assigned once by the catalog and never changes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package menu
