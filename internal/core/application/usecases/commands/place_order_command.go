package commands

import (
	"errors"

	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to place a customer order against
// the current catalog. Item ids are carried as given; resolution against the
// catalog happens in the handler at placement time.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand([]int{1, 2}, "Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %d placed in status %s", placed.ID(), placed.Status())
type PlaceOrderCommand struct {
	itemIDs      []int
	customerName string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// The item id sequence must be non-empty; the customer name is optional and
// carried as given.
func NewPlaceOrderCommand(itemIDs []int, customerName string) (PlaceOrderCommand, error) {
	if len(itemIDs) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredErrorWithCause(
			"items",
			errors.New("must be a non-empty sequence"),
		)
	}

	ids := make([]int, len(itemIDs))
	copy(ids, itemIDs)

	return PlaceOrderCommand{
		itemIDs:      ids,
		customerName: customerName,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ItemIDs returns the referenced catalog item ids in the order given.
func (c PlaceOrderCommand) ItemIDs() []int {
	return c.itemIDs
}

// CustomerName returns the optional customer name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}
