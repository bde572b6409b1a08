package queries

import (
	"context"
	"errors"

	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// GetOrderQueryHandler produces the resolved view of one order. Items are
// resolved live against the current catalog, so a price or category changed
// after placement is reflected on read. An id that no longer resolves yields
// an unresolved marker instead of failing the whole read.
type GetOrderQueryHandler struct {
	menuRepository  ports.MenuRepository
	orderRepository ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order queries.
func NewGetOrderQueryHandler(
	menuRepository ports.MenuRepository,
	orderRepository ports.OrderRepository,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		menuRepository:  menuRepository,
		orderRepository: orderRepository,
	}
}

// Handle executes the query. Returns ObjectNotFoundError if no order with
// the requested id exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orderRepository.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	itemIDs := o.ItemIDs()
	items := make([]GetOrderQueryResponseItem, len(itemIDs))
	for i, itemID := range itemIDs {
		item, itemErr := h.menuRepository.Get(ctx, itemID)
		if itemErr != nil {
			if errors.Is(itemErr, errs.ErrObjectNotFound) {
				// Stale weak reference: the catalog entry is gone.
				items[i] = GetOrderQueryResponseItem{ID: itemID, Resolved: false}
				continue
			}
			return GetOrderQueryResponse{}, itemErr
		}

		items[i] = GetOrderQueryResponseItem{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Category: item.Category().String(),
			Resolved: true,
		}
	}

	return GetOrderQueryResponse{
		OrderID:      o.ID(),
		Items:        items,
		CustomerName: o.CustomerName(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt(),
	}, nil
}
