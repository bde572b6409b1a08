package commands

import (
	"errors"

	"foodorders/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusesCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusesCommand must be created via NewAdvanceOrderStatusesCommand constructor",
	)
)

// AdvanceOrderStatusesCommand represents one sweep over the order collection
// that moves every non-terminal order one lifecycle step forward. It is
// issued by the status scheduler on each tick, never by request traffic.
type AdvanceOrderStatusesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusesCommand creates a command for one status sweep.
// This is a parameterless command; the sweep covers every stored order.
func NewAdvanceOrderStatusesCommand() AdvanceOrderStatusesCommand {
	return AdvanceOrderStatusesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderStatusesCommandIsNotConstructed if validation fails.
func (c AdvanceOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusesCommandIsNotConstructed)
}
