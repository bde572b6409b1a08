package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"
)

// InMemoryOrderRepository implements ports.OrderRepository with
// process-lifetime in-memory state. An internal RWMutex protects the order
// collection and the id counter, so id assignment is atomic and the status
// sweep always sees a consistent snapshot.
type InMemoryOrderRepository struct {
	mu sync.RWMutex

	// orders holds all placed orders in insertion order
	orders []*OrderDTO

	// byID indexes orders by their identifier
	byID map[int]*OrderDTO

	// nextID is the monotonic id counter; ids start at 1 and are never reused
	nextID int
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		byID: make(map[int]*OrderDTO),
	}
}

// NextID reserves and returns the next sequential order identifier.
func (r *InMemoryOrderRepository) NextID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	return r.nextID, nil
}

// Add stores a new order aggregate.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("order %d already exists", aggregate.ID()),
		)
	}

	dto := fromDomain(aggregate)
	r.orders = append(r.orders, dto)
	r.byID[dto.ID] = dto
	return nil
}

// Update replaces the stored state of an existing order.
func (r *InMemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dto, ok := r.byID[aggregate.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("orderId", aggregate.ID())
	}

	*dto = *fromDomain(aggregate)
	return nil
}

// Get retrieves an order by id.
func (r *InMemoryOrderRepository) Get(_ context.Context, id int) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dto, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id)
	}

	return toDomain(dto)
}

// GetAll returns a snapshot of every stored order in insertion order.
// The snapshot is taken under the read lock, so a concurrently placed order
// is either fully included or absent, never partially visible.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.orders))
	for _, dto := range r.orders {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
