package queries

import (
	"context"

	"foodorders/internal/core/ports"
)

// GetMenuQueryHandler retrieves the catalog snapshot for display.
// Items are returned in insertion order with their current price and
// category, exactly one entry per distinct name.
type GetMenuQueryHandler struct {
	menuRepository ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
func NewGetMenuQueryHandler(menuRepository ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuRepository: menuRepository}
}

// Handle executes the query and returns the full catalog in insertion order.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponseItem, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]GetMenuQueryResponseItem, len(items))
	for i, item := range items {
		response[i] = GetMenuQueryResponseItem{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Category: item.Category().String(),
		}
	}

	return response, nil
}
