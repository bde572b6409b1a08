package menu

import (
	"fmt"
	"strings"

	"foodorders/internal/pkg/errs"
)

// Category represents the fixed catalog section an item belongs to.
// The set of valid categories is closed: Pizza, Drinks and Dessert.
//
// Category is a value object that validates membership in the fixed set
// and provides string representations for transport and display.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	// CategoryPizza is the pizza section of the catalog.
	CategoryPizza

	// CategoryDrinks is the drinks section of the catalog.
	CategoryDrinks

	// CategoryDessert is the dessert section of the catalog.
	CategoryDessert
)

// getCategoryStrings returns a map of Category values to their string
// representations. All categories are included for string conversion.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "Unknown",
		CategoryPizza:   "Pizza",
		CategoryDrinks:  "Drinks",
		CategoryDessert: "Dessert",
	}
}

// validCategories returns the valid categories in their canonical order.
// CategoryUnknown is intentionally excluded as it is invalid.
func validCategories() []Category {
	return []Category{CategoryPizza, CategoryDrinks, CategoryDessert}
}

// CategoryNames returns the names of all valid categories in canonical order.
// Used to enumerate the valid set in validation error messages.
func CategoryNames() []string {
	categories := validCategories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return names
}

// CategoryFromName resolves a category name to its Category value.
//
// Returns an error enumerating the valid set if the name is not one of
// Pizza, Drinks or Dessert. Matching is exact, including case.
func CategoryFromName(name string) (Category, error) {
	for _, c := range validCategories() {
		if c.String() == name {
			return c, nil
		}
	}

	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("valid categories are: %s", strings.Join(CategoryNames(), ", ")),
	)
}

// Validate checks if the Category value is a member of the fixed set.
//
// Returns:
//   - nil if the category is valid
//   - error enumerating the valid set if the category is invalid
func (c Category) Validate() error {
	for _, valid := range validCategories() {
		if c == valid {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("valid categories are: %s", strings.Join(CategoryNames(), ", ")),
	)
}

// String returns the human-readable name of the category.
//
// This method implements the fmt.Stringer interface and is safe to call
// on any Category value, including invalid ones.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
