// Package ports defines the persistence contracts between the application
// core and its storage adapters.
package ports

import (
	"context"

	"foodorders/internal/core/domain/model/menu"
)

// MenuRepository defines the storage contract for the catalog of sellable
// items. The repository is the sole owner and mutator of the catalog: it
// assigns item identifiers from its own monotonic counter and guarantees
// name uniqueness.
type MenuRepository interface {
	// Upsert applies a batch of validated candidates to the catalog
	// atomically. A candidate whose name matches an existing item updates
	// that item's price and category in place; otherwise a new item is
	// created with a freshly assigned identifier. Returns the resulting
	// items in batch order. No mutation occurs if any candidate is invalid.
	Upsert(ctx context.Context, candidates []menu.Candidate) ([]*menu.Item, error)

	// Get retrieves a catalog item by its identifier.
	// Returns ObjectNotFoundError if no item with that id exists.
	Get(ctx context.Context, id int) (*menu.Item, error)

	// GetAll returns a snapshot of the full catalog in insertion order.
	GetAll(ctx context.Context) ([]*menu.Item, error)
}
