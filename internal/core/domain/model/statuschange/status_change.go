package statuschange

import (
	"errors"
	"fmt"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/errs"
)

// MaxStatusLength bounds the status label, matching the platform's DTO rules.
const MaxStatusLength = 100

var (
	// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
	// created through NewStatusChange or RestoreStatusChange.
	ErrStatusChangeIsNotConstructed = errors.New(
		"StatusChange must be created via NewStatusChange or RestoreStatusChange")

	// ErrChangeTimeInFuture is returned when a change time lies after the
	// validation instant. Wrapped causes carry the offending timestamps.
	ErrChangeTimeInFuture = errors.New("change time cannot be in the future")

	// ErrStatusChangeIsDeleted is returned when mutating a soft-deleted record.
	ErrStatusChangeIsDeleted = errors.New("status change is already deleted")
)

// StatusChange represents a single transition in an order's status history.
//
// Invariants:
//   - id and orderID are valid UUIDs; orderID never changes after creation
//   - status is a non-empty label of at most MaxStatusLength characters
//   - changeTime is never in the future relative to the validation instant
//   - a deleted record cannot be edited or deleted again
type StatusChange struct {
	id      kernel.UUID
	orderID kernel.UUID

	status     string
	changeTime time.Time

	createdBy   string
	createdTime time.Time

	lastUpdatedBy   string
	lastUpdatedTime time.Time

	deletion kernel.Deletion

	isConstructed bool
}

// NewStatusChange creates a status change attributed to actor. The change time
// must not be after now; now also becomes the creation timestamp.
//
// The strictly-after-latest-prior rule is not checked here — the caller is
// expected to verify it against the latest non-deleted record for the order
// within the same transaction.
func NewStatusChange(
	id kernel.UUID,
	orderID kernel.UUID,
	status string,
	changeTime time.Time,
	actor string,
	now time.Time,
) (*StatusChange, error) {
	sc := &StatusChange{
		createdBy:       actor,
		createdTime:     now,
		lastUpdatedBy:   actor,
		lastUpdatedTime: now,
		deletion:        kernel.NotDeleted(),
		isConstructed:   true,
	}

	if err := errors.Join(
		sc.setID(id),
		sc.setOrderID(orderID),
		sc.setStatus(status),
		sc.setChangeTime(changeTime, now),
		validateActor(actor),
	); err != nil {
		return nil, err
	}

	return sc, nil
}

// RestoreStatusChange reconstructs a StatusChange from persistence.
// No temporal validation is performed: the record was validated when written,
// and "now" has moved on since.
func RestoreStatusChange(
	id kernel.UUID,
	orderID kernel.UUID,
	status string,
	changeTime time.Time,
	createdBy string,
	createdTime time.Time,
	lastUpdatedBy string,
	lastUpdatedTime time.Time,
	deletion kernel.Deletion,
) (*StatusChange, error) {
	sc := &StatusChange{
		changeTime:      changeTime,
		createdBy:       createdBy,
		createdTime:     createdTime,
		lastUpdatedBy:   lastUpdatedBy,
		lastUpdatedTime: lastUpdatedTime,
		deletion:        deletion,
		isConstructed:   true,
	}

	if err := errors.Join(
		sc.setID(id),
		sc.setOrderID(orderID),
		sc.setStatus(status),
	); err != nil {
		return nil, err
	}

	return sc, nil
}

// Validate ensures the instance was created through a constructor.
func (sc *StatusChange) Validate() error {
	if sc == nil || !sc.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}

	return nil
}

// Edit replaces the status and change time and refreshes update attribution.
// The order reference is deliberately not editable. Fails for deleted records
// and for change times after now; the caller re-checks the ordering rule
// against the latest non-deleted record excluding this one.
func (sc *StatusChange) Edit(status string, changeTime time.Time, actor string, now time.Time) error {
	if sc.deletion.IsDeleted() {
		return ErrStatusChangeIsDeleted
	}

	if err := validateActor(actor); err != nil {
		return err
	}

	prevStatus, prevChangeTime := sc.status, sc.changeTime
	if err := errors.Join(
		sc.setStatus(status),
		sc.setChangeTime(changeTime, now),
	); err != nil {
		sc.status, sc.changeTime = prevStatus, prevChangeTime
		return err
	}

	sc.lastUpdatedBy = actor
	sc.lastUpdatedTime = now
	return nil
}

// MarkDeleted transitions the record to the deleted state. Deleted is
// terminal: marking an already deleted record fails.
func (sc *StatusChange) MarkDeleted(actor string, now time.Time) error {
	if sc.deletion.IsDeleted() {
		return ErrStatusChangeIsDeleted
	}

	deletion, err := kernel.DeletedBy(actor, now)
	if err != nil {
		return err
	}

	sc.deletion = deletion
	return nil
}

// ID returns the record's unique identifier.
func (sc *StatusChange) ID() kernel.UUID {
	return sc.id
}

// OrderID returns the identifier of the order this change belongs to.
func (sc *StatusChange) OrderID() kernel.UUID {
	return sc.orderID
}

// Status returns the lifecycle label asserted by this change.
func (sc *StatusChange) Status() string {
	return sc.status
}

// ChangeTime returns when the transition is asserted to have occurred.
func (sc *StatusChange) ChangeTime() time.Time {
	return sc.changeTime
}

// CreatedBy returns the actor who appended the record.
func (sc *StatusChange) CreatedBy() string {
	return sc.createdBy
}

// CreatedTime returns when the record was appended.
func (sc *StatusChange) CreatedTime() time.Time {
	return sc.createdTime
}

// LastUpdatedBy returns the actor of the most recent mutation.
func (sc *StatusChange) LastUpdatedBy() string {
	return sc.lastUpdatedBy
}

// LastUpdatedTime returns when the record was last mutated.
func (sc *StatusChange) LastUpdatedTime() time.Time {
	return sc.lastUpdatedTime
}

// Deletion returns the record's soft-delete state.
func (sc *StatusChange) Deletion() kernel.Deletion {
	return sc.deletion
}

// IsDeleted reports whether the record has been soft deleted.
func (sc *StatusChange) IsDeleted() bool {
	return sc.deletion.IsDeleted()
}

func (sc *StatusChange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	sc.id = id
	return nil
}

func (sc *StatusChange) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	sc.orderID = orderID
	return nil
}

func (sc *StatusChange) setStatus(status string) error {
	if status == "" {
		return errs.NewValueIsRequiredError("status")
	}
	if len(status) > MaxStatusLength {
		return errs.NewValueIsOutOfRangeError("status", len(status), 1, MaxStatusLength)
	}
	sc.status = status
	return nil
}

func (sc *StatusChange) setChangeTime(changeTime, now time.Time) error {
	if changeTime.IsZero() {
		return errs.NewValueIsRequiredError("changeTime")
	}
	if changeTime.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("changeTime",
			fmt.Errorf("%w: %s is after %s", ErrChangeTimeInFuture,
				changeTime.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano)))
	}
	sc.changeTime = changeTime
	return nil
}

func validateActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	return nil
}
