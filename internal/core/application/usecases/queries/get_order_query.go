package queries

import (
	"errors"
	"time"

	"foodorders/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order by id with its items resolved against
// the current catalog.
//
// Example:
//
//	query := NewGetOrderQuery(1)
//	handler := NewGetOrderQueryHandler(menuRepo, orderRepo)
//
//	resolved, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // order does not exist
//	}
type GetOrderQuery struct {
	orderID int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order. Any integer is accepted;
// an id that matches no stored order resolves to ObjectNotFoundError in the
// handler.
func NewGetOrderQuery(orderID int) GetOrderQuery {
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order identifier.
func (q GetOrderQuery) OrderID() int {
	return q.orderID
}

// GetOrderQueryResponse represents the resolved view of one order: each
// stored item id is expanded to the current catalog record when it still
// resolves.
type GetOrderQueryResponse struct {
	OrderID      int
	Items        []GetOrderQueryResponseItem
	CustomerName string
	Status       string
	CreatedAt    time.Time
}

// GetOrderQueryResponseItem represents one order line in the resolved view.
// Resolved reports whether the referenced catalog entry still exists; when
// it does not, only the stale id is carried (the weak-reference case).
type GetOrderQueryResponseItem struct {
	ID       int
	Name     string
	Price    float64
	Category string
	Resolved bool
}
