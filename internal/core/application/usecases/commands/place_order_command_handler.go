package commands

import (
	"context"
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Every referenced item id must resolve against the current catalog; the
// first unresolvable id rejects the whole command and no order is created.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(menuRepo, orderRepo)
//	cmd, _ := NewPlaceOrderCommand([]int{1}, "Alice")
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed.Status() == order.Preparing
type PlaceOrderCommandHandler struct {
	menuRepository  ports.MenuRepository
	orderRepository ports.OrderRepository
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	menuRepository ports.MenuRepository,
	orderRepository ports.OrderRepository,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		menuRepository:  menuRepository,
		orderRepository: orderRepository,
	}
}

// Handle processes the placement command. On success the created order is
// returned: it carries the next sequential identifier, starts in Preparing
// status, and has its creation timestamp captured.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	for _, itemID := range cmd.ItemIDs() {
		if _, err := h.menuRepository.Get(ctx, itemID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"items",
					fmt.Errorf("invalid item id: %d", itemID),
				)
			}
			return nil, err
		}
	}

	id, err := h.orderRepository.NextID(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(id, cmd.ItemIDs(), cmd.CustomerName())
	if err != nil {
		return nil, err
	}

	if err = h.orderRepository.Add(ctx, placed); err != nil {
		return nil, err
	}

	return placed, nil
}
