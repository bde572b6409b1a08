package order

import (
	"errors"
	"fmt"
	"time"

	"foodorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed customer order. It is the aggregate root that
// manages the order lifecycle from placement through delivery.
//
// Order follows these invariants:
//   - Must have a positive unique identifier assigned by the store
//   - Must reference at least one catalog item id
//   - Status transitions are strictly forward-moving, one step at a time
//   - The creation timestamp is captured once and never changes
//   - Can only be created through NewOrder or RestoreOrder
//
// Item ids are weak references into the catalog's id space: the order keeps
// them as placed and readers resolve them against the current catalog.
type Order struct {
	// id is the store-assigned sequential identifier
	id int

	// itemIDs are the referenced catalog item ids, in the order given
	itemIDs []int

	// customerName is optional and stored as given, without validation
	customerName string

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is the placement timestamp, immutable after creation
	createdAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. The order starts in
// Preparing status with the creation timestamp captured at call time.
//
// Parameters:
//   - id: Store-assigned identifier (must be positive)
//   - itemIDs: Referenced catalog item ids (must be non-empty)
//   - customerName: Optional customer name, stored as given
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id int, itemIDs []int, customerName string) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		status:        Preparing,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItemIDs(itemIDs),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from stored state. Used by the
// repository layer to rebuild aggregates without resetting the status or the
// creation timestamp.
func RestoreOrder(id int, itemIDs []int, customerName string, status Status, createdAt time.Time) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItemIDs(itemIDs),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's unique identifier.
func (o *Order) ID() int {
	return o.id
}

// ItemIDs returns a copy of the referenced catalog item ids, in the order
// they were placed.
func (o *Order) ItemIDs() []int {
	ids := make([]int, len(o.itemIDs))
	copy(ids, o.itemIDs)
	return ids
}

// CustomerName returns the customer name as it was given at placement.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AdvanceStatus moves the order one step forward in its lifecycle.
//
// Transitions:
//   - Preparing -> OutForDelivery
//   - OutForDelivery -> Delivered
//   - Delivered stays Delivered
//
// Returns true if the status changed and false if the order was already in
// the terminal state. The transition cannot fail for any valid order.
func (o *Order) AdvanceStatus() bool {
	next := o.status.Advance()
	if next == o.status {
		return false
	}

	o.status = next
	return true
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setItemIDs validates and sets the referenced catalog item ids.
// This is a private method used only during construction.
func (o *Order) setItemIDs(itemIDs []int) error {
	if len(itemIDs) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("must be a non-empty sequence"))
	}

	ids := make([]int, len(itemIDs))
	copy(ids, itemIDs)
	o.itemIDs = ids
	return nil
}

// setStatus validates and sets the order's status during restoration.
// This is a private method used only by RestoreOrder.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
