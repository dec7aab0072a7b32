package commands

import (
	"errors"
	"time"

	"handmade/internal/pkg/guard"
)

var (
	ErrExpirePaymentsCommandIsNotConstructed = errors.New(
		"ExpirePaymentsCommand must be created via NewExpirePaymentsCommand constructor",
	)
	ErrNowIsRequired = errors.New("now is required")
)

// ExpirePaymentsCommand represents a sweep over pending payments whose
// settlement deadline has passed as of the supplied instant.
type ExpirePaymentsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpirePaymentsCommand creates a command to expire overdue pending payments.
// The instant is captured explicitly so the sweep is deterministic for a run.
func NewExpirePaymentsCommand(now time.Time) (ExpirePaymentsCommand, error) {
	command := ExpirePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setNow(now); err != nil {
		return ExpirePaymentsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePaymentsCommandIsNotConstructed if validation fails.
func (c ExpirePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePaymentsCommandIsNotConstructed)
}

// Now returns the instant overdue payments are compared against.
func (c ExpirePaymentsCommand) Now() time.Time {
	return c.now
}

func (c *ExpirePaymentsCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return ErrNowIsRequired
	}

	c.now = now
	return nil
}
