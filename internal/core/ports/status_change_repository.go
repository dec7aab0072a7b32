package ports

import (
	"context"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/statuschange"
)

// StatusChangeRepository defines the persistence contract for status-change
// records. Listing/paging reads live on the query side; this interface only
// carries what the commands need.
type StatusChangeRepository interface {
	// Add persists a new status-change record.
	Add(ctx context.Context, aggregate *statuschange.StatusChange) error

	// Update persists changes to an existing record (edits and soft deletes).
	Update(ctx context.Context, aggregate *statuschange.StatusChange) error

	// Get retrieves a record by its unique identifier regardless of its
	// soft-delete state. Callers decide how to treat deleted records.
	Get(ctx context.Context, id kernel.UUID) (*statuschange.StatusChange, error)

	// GetLatestForOrder retrieves the non-deleted record with the greatest
	// change time for the given order. Used as the "latest prior" reference
	// when validating the strictly-increasing change-time rule.
	GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*statuschange.StatusChange, error)

	// GetLatestForOrderExcluding behaves like GetLatestForOrder but ignores
	// the record with the given id. Used when re-validating an update, where
	// the record being rewritten must not be its own predecessor.
	GetLatestForOrderExcluding(
		ctx context.Context,
		orderID kernel.UUID,
		excludeID kernel.UUID,
	) (*statuschange.StatusChange, error)
}
