package services

import (
	"errors"
	"time"

	"handmade/internal/core/domain/model/statuschange"
)

// ErrChangeTimeOutOfOrder is returned when a change time does not lie strictly
// after the latest non-deleted status change for the same order. A losing
// concurrent append surfaces as this error too; callers wanting to retry must
// re-read current state first.
var ErrChangeTimeOutOfOrder = errors.New("change time must be after the latest status change")

// LedgerChronology is a domain service that enforces the temporal ordering of
// an order's status-change history.
//
// Business rules:
//   - Per order, non-deleted status changes sorted by change time form a
//     strictly increasing sequence: no ties, no regressions.
//   - Soft-deleted records do not participate; the latest prior record handed
//     to this service must already be the latest visible one.
//   - An order with no visible history accepts any change time.
//
// Example usage:
//
//	latest, err := repo.GetLatestForOrder(ctx, orderID)
//	if err != nil {
//	    // treat not-found as empty history
//	}
//
//	chronology := services.NewLedgerChronology()
//	if err := chronology.EnsureAppendAfter(changeTime, latest); err != nil {
//	    // changeTime collides with or precedes the latest record
//	    return err
//	}
type LedgerChronology struct{}

// NewLedgerChronology creates a new LedgerChronology instance.
func NewLedgerChronology() LedgerChronology {
	return LedgerChronology{}
}

// EnsureAppendAfter checks that changeTime lies strictly after the latest
// visible status change. A nil latest means the order has no visible history
// and any change time is accepted. Returns ErrChangeTimeOutOfOrder when the
// rule is violated.
func (c LedgerChronology) EnsureAppendAfter(changeTime time.Time, latest *statuschange.StatusChange) error {
	if latest == nil {
		return nil
	}

	if err := latest.Validate(); err != nil {
		return err
	}

	if !changeTime.After(latest.ChangeTime()) {
		return ErrChangeTimeOutOfOrder
	}

	return nil
}
