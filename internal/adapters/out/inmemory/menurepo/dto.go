// Package menurepo provides an in-memory implementation of the menu
// repository. It owns the catalog state behind a mutex and maps between
// domain aggregates and its internal storage representation.
package menurepo

import (
	"foodorders/internal/core/domain/model/menu"
)

// MenuItemDTO is the internal storage representation of a catalog item.
// Keeping plain structs internally means every aggregate handed out is a
// fresh copy, so callers can never mutate repository state directly.
type MenuItemDTO struct {
	ID       int
	Name     string
	Price    float64
	Category int
}

// fromDomain converts a menu item aggregate to its storage representation.
func fromDomain(item *menu.Item) *MenuItemDTO {
	return &MenuItemDTO{
		ID:       item.ID(),
		Name:     item.Name(),
		Price:    item.Price(),
		Category: int(item.Category()),
	}
}

// toDomain converts a storage record to a fresh menu item aggregate.
func toDomain(dto *MenuItemDTO) (*menu.Item, error) {
	return menu.NewItem(dto.ID, dto.Name, dto.Price, menu.Category(dto.Category))
}
