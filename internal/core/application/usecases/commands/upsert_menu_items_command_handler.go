package commands

import (
	"context"

	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/core/ports"
)

// UpsertMenuItemsCommandHandler handles the business logic for catalog
// upserts. The batch is applied atomically: either every candidate takes
// effect or the catalog is left untouched.
//
// Example:
//
//	handler := NewUpsertMenuItemsCommandHandler(menuRepo)
//	items, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("menu upsert failed: %w", err)
//	}
//	fmt.Printf("%d catalog entries in effect", len(items))
type UpsertMenuItemsCommandHandler struct {
	menuRepository ports.MenuRepository
}

// NewUpsertMenuItemsCommandHandler creates a handler for catalog upserts.
func NewUpsertMenuItemsCommandHandler(menuRepository ports.MenuRepository) UpsertMenuItemsCommandHandler {
	return UpsertMenuItemsCommandHandler{
		menuRepository: menuRepository,
	}
}

// Handle processes the upsert command and returns the resulting catalog
// items in batch order: updated items keep their original identifiers, new
// items carry freshly assigned ones.
func (h *UpsertMenuItemsCommandHandler) Handle(ctx context.Context, cmd UpsertMenuItemsCommand) ([]*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.menuRepository.Upsert(ctx, cmd.Candidates())
}
