package commands

import (
	"errors"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/guard"
)

var (
	ErrCreateStatusChangeCommandIsNotConstructed = errors.New(
		"CreateStatusChangeCommand must be created via NewCreateStatusChangeCommand constructor",
	)
	ErrStatusIsRequired     = errors.New("status is required")
	ErrActorIsRequired      = errors.New("actor is required")
	ErrChangeTimeIsRequired = errors.New("change time is required")
)

// CreateStatusChangeCommand represents a request to append a status transition
// to an order's history. A fresh record identifier is generated at command
// construction so callers can reference the record once the append succeeds.
//
// Example:
//
//	cmd, err := NewCreateStatusChangeCommand(orderID, "Shipped", shippedAt, "seller-42")
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewCreateStatusChangeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to append status change: %w", err)
//	}
//	fmt.Printf("Appended status change %s", cmd.StatusChangeID())
type CreateStatusChangeCommand struct { //nolint:recvcheck //using for validation
	statusChangeID kernel.UUID
	orderID        kernel.UUID
	status         string
	changeTime     time.Time
	actor          string

	guard guard.ConstructorGuard
}

// NewCreateStatusChangeCommand creates a command to append a status change.
// Automatically generates a unique ID for the record. Validates that the order
// ID is valid and that status, change time, and actor are present; the
// temporal rules are enforced by the handler against current state.
func NewCreateStatusChangeCommand(
	orderID kernel.UUID,
	status string,
	changeTime time.Time,
	actor string,
) (CreateStatusChangeCommand, error) {
	command := CreateStatusChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setStatusChangeID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setStatus(status),
		command.setChangeTime(changeTime),
		command.setActor(actor),
	); err != nil {
		return CreateStatusChangeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateStatusChangeCommandIsNotConstructed if validation fails.
func (c CreateStatusChangeCommand) Validate() error {
	return c.guard.Validate(ErrCreateStatusChangeCommandIsNotConstructed)
}

// StatusChangeID returns the generated identifier for the new record.
func (c CreateStatusChangeCommand) StatusChangeID() kernel.UUID {
	return c.statusChangeID
}

// OrderID returns the identifier of the order receiving the status change.
func (c CreateStatusChangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the new lifecycle label.
func (c CreateStatusChangeCommand) Status() string {
	return c.status
}

// ChangeTime returns when the transition is asserted to have occurred.
func (c CreateStatusChangeCommand) ChangeTime() time.Time {
	return c.changeTime
}

// Actor returns the identity attributed to the append.
func (c CreateStatusChangeCommand) Actor() string {
	return c.actor
}

func (c *CreateStatusChangeCommand) setStatusChangeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.statusChangeID = id
	return nil
}

func (c *CreateStatusChangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateStatusChangeCommand) setStatus(status string) error {
	if status == "" {
		return ErrStatusIsRequired
	}

	c.status = status
	return nil
}

func (c *CreateStatusChangeCommand) setChangeTime(changeTime time.Time) error {
	if changeTime.IsZero() {
		return ErrChangeTimeIsRequired
	}

	c.changeTime = changeTime
	return nil
}

func (c *CreateStatusChangeCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}
