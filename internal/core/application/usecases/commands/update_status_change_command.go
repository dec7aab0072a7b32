package commands

import (
	"errors"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/guard"
)

var (
	ErrUpdateStatusChangeCommandIsNotConstructed = errors.New(
		"UpdateStatusChangeCommand must be created via NewUpdateStatusChangeCommand constructor",
	)
)

// UpdateStatusChangeCommand represents a request to rewrite an existing
// status-change record. The caller must echo the record's order ID: the order
// reference is immutable, and a mismatch is rejected by the handler.
type UpdateStatusChangeCommand struct { //nolint:recvcheck //using for validation
	statusChangeID kernel.UUID
	orderID        kernel.UUID
	status         string
	changeTime     time.Time
	actor          string

	guard guard.ConstructorGuard
}

// NewUpdateStatusChangeCommand creates a command to rewrite a status change.
// Validates identifier shape and presence of status, change time, and actor;
// temporal rules and the order-reference check happen in the handler.
func NewUpdateStatusChangeCommand(
	statusChangeID kernel.UUID,
	orderID kernel.UUID,
	status string,
	changeTime time.Time,
	actor string,
) (UpdateStatusChangeCommand, error) {
	command := UpdateStatusChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStatusChangeID(statusChangeID),
		command.setOrderID(orderID),
		command.setStatus(status),
		command.setChangeTime(changeTime),
		command.setActor(actor),
	); err != nil {
		return UpdateStatusChangeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStatusChangeCommandIsNotConstructed if validation fails.
func (c UpdateStatusChangeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusChangeCommandIsNotConstructed)
}

// StatusChangeID returns the identifier of the record to rewrite.
func (c UpdateStatusChangeCommand) StatusChangeID() kernel.UUID {
	return c.statusChangeID
}

// OrderID returns the order reference echoed by the caller.
func (c UpdateStatusChangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the replacement lifecycle label.
func (c UpdateStatusChangeCommand) Status() string {
	return c.status
}

// ChangeTime returns the replacement transition timestamp.
func (c UpdateStatusChangeCommand) ChangeTime() time.Time {
	return c.changeTime
}

// Actor returns the identity attributed to the update.
func (c UpdateStatusChangeCommand) Actor() string {
	return c.actor
}

func (c *UpdateStatusChangeCommand) setStatusChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.statusChangeID = id
	return nil
}

func (c *UpdateStatusChangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateStatusChangeCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}

func (c *UpdateStatusChangeCommand) setChangeTime(changeTime time.Time) error {
	if changeTime.IsZero() {
		return ErrChangeTimeIsRequired
	}

	c.changeTime = changeTime
	return nil
}

func (c *UpdateStatusChangeCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
