package commands

import (
	"errors"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/guard"
)

var (
	ErrCreatePaymentCommandIsNotConstructed = errors.New(
		"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
	)
	ErrAmountIsInvalid          = errors.New("amount must be greater than 0")
	ErrExpirationTimeIsRequired = errors.New("expiration time is required")
)

// CreatePaymentCommand represents a request to register a pending payment for
// an order. Amounts are in minor currency units. A fresh payment identifier is
// generated at command construction.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID      kernel.UUID
	orderID        kernel.UUID
	amount         int64
	expirationTime time.Time

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to register a pending payment.
// Validates that the order ID is valid, the amount is positive, and the
// expiration time is present.
func NewCreatePaymentCommand(
	orderID kernel.UUID,
	amount int64,
	expirationTime time.Time,
) (CreatePaymentCommand, error) {
	command := CreatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPaymentID(kernel.NewUUID()),
		command.setOrderID(orderID),
		command.setAmount(amount),
		command.setExpirationTime(expirationTime),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePaymentCommandIsNotConstructed if validation fails.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the generated identifier for the new payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being paid for.
func (c CreatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the payment amount in minor units.
func (c CreatePaymentCommand) Amount() int64 {
	return c.amount
}

// ExpirationTime returns the settlement deadline.
func (c CreatePaymentCommand) ExpirationTime() time.Time {
	return c.expirationTime
}

func (c *CreatePaymentCommand) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.paymentID = id
	return nil
}

func (c *CreatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreatePaymentCommand) setExpirationTime(expirationTime time.Time) error {
	if expirationTime.IsZero() {
		return ErrExpirationTimeIsRequired
	}

	c.expirationTime = expirationTime
	return nil
}
