// Package ports defines repository and unit-of-work interfaces for the domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The status-change ledger only ever reads orders; writes are limited to
// registering new ones.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetActive retrieves a non-deleted order by its unique identifier.
	// Soft-deleted orders are reported as not found.
	GetActive(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveForUpdate retrieves a non-deleted order and locks its row for
	// the remainder of the current transaction. Appends to an order's status
	// history take this lock first so the read-latest-then-insert sequence is
	// serialized per order while other orders proceed in parallel.
	GetActiveForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
