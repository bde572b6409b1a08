// Package queries contains read-only operations over system state.
// Implements the Query pattern for the read side of the CQRS architecture.
// Query handlers never mutate state; they produce response views resolved
// against the current catalog.
package queries
