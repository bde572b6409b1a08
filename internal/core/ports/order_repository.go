package ports

import (
	"context"

	"foodorders/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for placed orders. The
// repository is the sole owner and mutator of the order collection and is
// the source of sequential order identifiers.
type OrderRepository interface {
	// NextID reserves and returns the next sequential order identifier.
	// Identifiers start at 1, strictly increase, and are never reused,
	// even across concurrent callers.
	NextID(ctx context.Context) (int, error)

	// Add stores a new order aggregate.
	// The order must be valid and its id must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns ObjectNotFoundError if no order with that id exists.
	Get(ctx context.Context, id int) (*order.Order, error)

	// GetAll returns a snapshot of every stored order. Each order appears
	// exactly once; the snapshot is consistent with respect to concurrent
	// placements.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
