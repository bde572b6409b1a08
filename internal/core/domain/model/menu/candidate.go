package menu

import "errors"

var (
	// ErrCandidateIsNotConstructed is returned when a Candidate instance was
	// not created through the NewCandidate factory method.
	ErrCandidateIsNotConstructed = errors.New("Candidate must be created via NewCandidate constructor")
)

// Candidate is a validated proposed catalog entry that has not been matched
// against the catalog yet and therefore carries no identifier.
//
// Candidates are what an upsert operates on: the catalog matches each
// candidate against existing items by name, updating the match in place or
// creating a new item with a freshly assigned identifier.
//
// Candidate is a value object; it enforces the same name, price and category
// rules as Item.
type Candidate struct {
	name     string
	price    float64
	category Category

	isConstructed bool
}

// NewCandidate creates a validated candidate entry.
//
// Validation rules match Item: the name must be non-empty, the price must be
// strictly greater than 0, and the category must be a member of the fixed
// set. Returns a validation error describing the first rule violated.
func NewCandidate(name string, price float64, category Category) (Candidate, error) {
	if err := validateName(name); err != nil {
		return Candidate{}, err
	}
	if err := validatePrice(price); err != nil {
		return Candidate{}, err
	}
	if err := category.Validate(); err != nil {
		return Candidate{}, err
	}

	return Candidate{
		name:          name,
		price:         price,
		category:      category,
		isConstructed: true,
	}, nil
}

// Validate ensures the candidate was created through NewCandidate.
func (c Candidate) Validate() error {
	if !c.isConstructed {
		return ErrCandidateIsNotConstructed
	}
	return nil
}

// Name returns the proposed item name (the upsert key).
func (c Candidate) Name() string {
	return c.name
}

// Price returns the proposed price.
func (c Candidate) Price() float64 {
	return c.price
}

// Category returns the proposed category.
func (c Candidate) Category() Category {
	return c.category
}
