package queries

import (
	"errors"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/guard"
)

var (
	ErrGetStatusChangesByOrderQueryIsNotConstructed = errors.New(
		"GetStatusChangesByOrderQuery must be created via NewGetStatusChangesByOrderQuery constructor",
	)
)

// GetStatusChangesByOrderQuery retrieves the full non-deleted status history of
// one order, in chronological order. An order with no visible history is
// reported as not found rather than as an empty history.
type GetStatusChangesByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusChangesByOrderQuery creates a query for one order's history.
// Validates that the order ID is a properly constructed UUID.
func NewGetStatusChangesByOrderQuery(orderID kernel.UUID) (GetStatusChangesByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusChangesByOrderQuery{}, err
	}

	return GetStatusChangesByOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusChangesByOrderQueryIsNotConstructed if validation fails.
func (q GetStatusChangesByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusChangesByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetStatusChangesByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetStatusChangesByOrderQueryResponse represents one record of an order's
// status history.
type GetStatusChangesByOrderQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Status     string
	ChangeTime time.Time
}
