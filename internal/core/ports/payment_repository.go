package ports

import (
	"context"
	"time"

	"handmade/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// GetAllOverduePending retrieves all non-deleted pending payments whose
	// expiration time lies at or before now. Used by the expiration sweep.
	GetAllOverduePending(ctx context.Context, now time.Time) ([]*payment.Payment, error)
}
