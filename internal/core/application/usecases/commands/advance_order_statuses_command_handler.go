package commands

import (
	"context"

	"foodorders/internal/core/ports"
)

// AdvanceOrderStatusesCommandHandler performs one status sweep over the
// order collection:
//
//	Preparing -> Out for Delivery
//	Out for Delivery -> Delivered
//	Delivered -> Delivered (terminal, no-op)
//
// The sweep visits every order exactly once per invocation and each order
// advances at most one step. Orders placed concurrently with a sweep are
// either fully included or left for the next one. The transition itself has
// no error path; only repository access can fail.
type AdvanceOrderStatusesCommandHandler struct {
	orderRepository ports.OrderRepository
}

// NewAdvanceOrderStatusesCommandHandler creates a handler for status sweeps.
func NewAdvanceOrderStatusesCommandHandler(orderRepository ports.OrderRepository) AdvanceOrderStatusesCommandHandler {
	return AdvanceOrderStatusesCommandHandler{
		orderRepository: orderRepository,
	}
}

// Handle executes one sweep and returns the number of orders whose status
// changed. An empty order collection is a no-op.
func (h *AdvanceOrderStatusesCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	orders, err := h.orderRepository.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, o := range orders {
		if !o.AdvanceStatus() {
			continue
		}

		if err = h.orderRepository.Update(ctx, o); err != nil {
			return advanced, err
		}
		advanced++
	}

	return advanced, nil
}
