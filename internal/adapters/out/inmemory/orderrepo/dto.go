// Package orderrepo provides an in-memory implementation of the order
// repository. It owns the order collection and the sequential id counter
// behind a mutex, and maps between domain aggregates and its internal
// storage representation.
package orderrepo

import (
	"time"

	"foodorders/internal/core/domain/model/order"
)

// OrderDTO is the internal storage representation of a placed order.
// Aggregates are rebuilt from it on every read, so repository state can
// never be mutated through a handed-out aggregate.
type OrderDTO struct {
	ID           int
	ItemIDs      []int
	CustomerName string
	Status       int
	CreatedAt    time.Time
}

// fromDomain converts an order aggregate to its storage representation.
func fromDomain(o *order.Order) *OrderDTO {
	return &OrderDTO{
		ID:           o.ID(),
		ItemIDs:      o.ItemIDs(),
		CustomerName: o.CustomerName(),
		Status:       int(o.Status()),
		CreatedAt:    o.CreatedAt(),
	}
}

// toDomain converts a storage record to a fresh order aggregate using
// RestoreOrder, preserving the stored status and creation timestamp.
func toDomain(dto *OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(dto.ID, dto.ItemIDs, dto.CustomerName, order.Status(dto.Status), dto.CreatedAt)
}
