package menu

import (
	"errors"
	"fmt"

	"foodorders/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method. This ensures all items are properly
	// validated.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item represents one sellable entry in the vendor's catalog. It is the
// aggregate root for the menu side of the system.
//
// Item follows these invariants:
//   - Must have a positive unique identifier assigned by the catalog
//   - Must have a non-empty name, unique within the catalog
//   - Price must be strictly greater than 0
//   - Category must be a member of the fixed enumerated set
//   - Can only be created through the NewItem constructor
//
// The identifier and name never change after creation; price and category
// may be updated in place through UpdateDetails when a later upsert matches
// the item by name.
type Item struct {
	// id is the catalog-assigned unique identifier
	id int

	// name is the unique upsert key within the catalog
	name string

	// price is the item price (must be positive)
	price float64

	// category is the catalog section the item belongs to
	category Category

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a new Item instance with validation. This is the only way
// to create a valid Item, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Catalog-assigned identifier (must be positive)
//   - name: Item name (must be non-empty)
//   - price: Item price (must be greater than 0)
//   - category: Catalog section (must be in the fixed set)
//
// Returns:
//   - *Item: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewItem(id int, name string, price float64, category Category) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
//
// Returns:
//   - nil if the item is valid
//   - ErrItemIsNotConstructed if the item was not created via NewItem
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id == other.id
}

// ID returns the item's catalog-assigned identifier.
func (i *Item) ID() int {
	return i.id
}

// Name returns the item's name.
func (i *Item) Name() string {
	return i.name
}

// Price returns the item's price.
func (i *Item) Price() float64 {
	return i.price
}

// Category returns the catalog section the item belongs to.
func (i *Item) Category() Category {
	return i.category
}

// UpdateDetails changes the item's price and category in place. The item's
// identifier and name are never touched; this is the mutation performed when
// an upsert matches an existing item by name.
//
// Returns a validation error if the new price or category is invalid, in
// which case the item is left unchanged.
func (i *Item) UpdateDetails(price float64, category Category) error {
	if err := errors.Join(
		validatePrice(price),
		category.Validate(),
	); err != nil {
		return err
	}

	i.price = price
	i.category = category
	return nil
}

// setID validates and sets the item's identifier.
// This is a private method used only during construction.
func (i *Item) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	i.id = id
	return nil
}

// setName validates and sets the item's name.
// This is a private method used only during construction.
func (i *Item) setName(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	i.name = name
	return nil
}

// setPrice validates and sets the item's price.
// This is a private method used only during construction.
func (i *Item) setPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	i.price = price
	return nil
}

// setCategory validates and sets the item's category.
// This is a private method used only during construction.
func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errs.NewValueIsInvalidErrorWithCause("name", errors.New("name must be a non-empty string"))
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	return nil
}
