package commands

import (
	"errors"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/guard"
)

var (
	ErrDeleteStatusChangeCommandIsNotConstructed = errors.New(
		"DeleteStatusChangeCommand must be created via NewDeleteStatusChangeCommand constructor",
	)
)

// DeleteStatusChangeCommand represents a request to soft delete a
// status-change record. Deletion is terminal and never physical: the record
// is stamped with the deletion time and actor and disappears from queries and
// from the ordering check, leaving any gap in the sequence unrepaired.
type DeleteStatusChangeCommand struct { //nolint:recvcheck //using for validation
	statusChangeID kernel.UUID
	actor          string

	guard guard.ConstructorGuard
}

// NewDeleteStatusChangeCommand creates a command to soft delete a status change.
// Validates that the record ID is a valid UUID and the actor is present.
func NewDeleteStatusChangeCommand(statusChangeID kernel.UUID, actor string) (DeleteStatusChangeCommand, error) {
	command := DeleteStatusChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStatusChangeID(statusChangeID),
		command.setActor(actor),
	); err != nil {
		return DeleteStatusChangeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteStatusChangeCommandIsNotConstructed if validation fails.
func (c DeleteStatusChangeCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStatusChangeCommandIsNotConstructed)
}

// StatusChangeID returns the identifier of the record to delete.
func (c DeleteStatusChangeCommand) StatusChangeID() kernel.UUID {
	return c.statusChangeID
}

// Actor returns the identity attributed to the deletion.
func (c DeleteStatusChangeCommand) Actor() string {
	return c.actor
}

func (c *DeleteStatusChangeCommand) setStatusChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.statusChangeID = id
	return nil
}

func (c *DeleteStatusChangeCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
