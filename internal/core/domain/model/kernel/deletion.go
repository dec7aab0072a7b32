package kernel

import (
	"time"

	"handmade/internal/pkg/errs"
)

// Deletion is a value object representing the soft-delete state of an entity.
// It has exactly two states: active and deleted. The deleted state carries the
// deletion timestamp and the actor who performed the deletion, so callers never
// have to interpret a nullable timestamp.
//
// The zero value is the active state, which makes Deletion safe to embed in
// freshly constructed entities.
type Deletion struct {
	deleted bool
	at      time.Time
	by      string
}

// NotDeleted returns the active deletion state.
func NotDeleted() Deletion {
	return Deletion{}
}

// DeletedBy returns the deleted state stamped with the actor and timestamp.
// The actor must be non-empty and the timestamp must be non-zero.
func DeletedBy(actor string, at time.Time) (Deletion, error) {
	if actor == "" {
		return Deletion{}, errs.NewValueIsRequiredError("deletedBy")
	}
	if at.IsZero() {
		return Deletion{}, errs.NewValueIsRequiredError("deletedTime")
	}

	return Deletion{
		deleted: true,
		at:      at,
		by:      actor,
	}, nil
}

// IsDeleted reports whether the entity has been soft deleted.
func (d Deletion) IsDeleted() bool {
	return d.deleted
}

// At returns the deletion timestamp. Zero for the active state.
func (d Deletion) At() time.Time {
	return d.at
}

// By returns the actor who performed the deletion. Empty for the active state.
func (d Deletion) By() string {
	return d.by
}
