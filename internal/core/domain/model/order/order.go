package order

import (
	"errors"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/errs"
)

// InitialStatus is the lifecycle label assigned to newly placed orders.
const InitialStatus = "Pending"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a customer order in the store. For the status-change ledger
// it is the existence anchor: a status change can only be appended to an order
// that exists and has not been soft deleted.
//
// Order invariants:
//   - Must have a valid unique identifier
//   - Must carry a non-empty lifecycle status label
//   - Must have a non-zero creation timestamp
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the current lifecycle label (no closed enum; the ledger
	// validates transitions temporally, not against a state machine)
	status string

	// createdTime is when the order was placed
	createdTime time.Time

	// deletion holds the soft-delete state
	deletion kernel.Deletion

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the initial "Pending" status.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - createdTime: placement timestamp (must be non-zero)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, createdTime time.Time) (*Order, error) {
	order := &Order{
		status:        InitialStatus,
		deletion:      kernel.NotDeleted(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedTime(createdTime),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its current
// status label and soft-delete state.
func RestoreOrder(
	id kernel.UUID,
	status string,
	createdTime time.Time,
	deletion kernel.Deletion,
) (*Order, error) {
	order := &Order{
		deletion:      deletion,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setStatus(status),
		order.setCreatedTime(createdTime),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the order's current lifecycle label.
func (o *Order) Status() string {
	return o.status
}

// CreatedTime returns the placement timestamp.
func (o *Order) CreatedTime() time.Time {
	return o.createdTime
}

// Deletion returns the order's soft-delete state.
func (o *Order) Deletion() kernel.Deletion {
	return o.deletion
}

// IsDeleted reports whether the order has been soft deleted.
func (o *Order) IsDeleted() bool {
	return o.deletion.IsDeleted()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedTime(createdTime time.Time) error {
	if createdTime.IsZero() {
		return errs.NewValueIsRequiredError("createdTime")
	}
	o.createdTime = createdTime
	return nil
}
