package commands

import (
	"errors"

	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	ErrUpsertMenuItemsCommandIsNotConstructed = errors.New(
		"UpsertMenuItemsCommand must be created via NewUpsertMenuItemsCommand constructor",
	)
)

// UpsertMenuItemsCommand represents a request to add or update a batch of
// catalog entries. Each candidate has already passed domain validation; the
// command only enforces that the batch itself is non-empty.
//
// Example:
//
//	candidate, err := menu.NewCandidate("Margherita", 9.5, menu.CategoryPizza)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewUpsertMenuItemsCommand([]menu.Candidate{candidate})
//	if err != nil {
//	    return err
//	}
//	items, err := handler.Handle(ctx, cmd)
type UpsertMenuItemsCommand struct {
	candidates []menu.Candidate

	guard guard.ConstructorGuard
}

// NewUpsertMenuItemsCommand creates a command to upsert catalog entries.
// The batch must be a non-empty sequence of constructed candidates.
func NewUpsertMenuItemsCommand(candidates []menu.Candidate) (UpsertMenuItemsCommand, error) {
	if len(candidates) == 0 {
		return UpsertMenuItemsCommand{}, errs.NewValueIsRequiredErrorWithCause(
			"items",
			errors.New("must be a non-empty sequence"),
		)
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return UpsertMenuItemsCommand{}, err
		}
	}

	return UpsertMenuItemsCommand{
		candidates: candidates,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpsertMenuItemsCommandIsNotConstructed if validation fails.
func (c UpsertMenuItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpsertMenuItemsCommandIsNotConstructed)
}

// Candidates returns the proposed catalog entries in batch order.
func (c UpsertMenuItemsCommand) Candidates() []menu.Candidate {
	return c.candidates
}
