package payment

import (
	"errors"
	"fmt"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

	// ErrPaymentNotOverdue is returned when expiring a payment whose deadline
	// has not passed yet.
	ErrPaymentNotOverdue = errors.New("payment expiration time has not passed")
)

// Payment represents a pending settlement for an order. Amounts are stored in
// minor currency units.
type Payment struct {
	id      kernel.UUID
	orderID kernel.UUID

	// amount in minor units, always positive
	amount int64

	status Status

	// expirationTime is the settlement deadline for pending payments
	expirationTime time.Time

	createdTime time.Time

	deletion kernel.Deletion

	isConstructed bool
}

// NewPayment creates a pending payment for an order.
// Amount must be positive and the expiration time non-zero.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount int64,
	expirationTime time.Time,
	createdTime time.Time,
) (*Payment, error) {
	p := &Payment{
		status:        Pending,
		deletion:      kernel.NotDeleted(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setExpirationTime(expirationTime),
		p.setCreatedTime(createdTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount int64,
	status Status,
	expirationTime time.Time,
	createdTime time.Time,
	deletion kernel.Deletion,
) (*Payment, error) {
	p := &Payment{
		deletion:      deletion,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setStatus(status),
		p.setExpirationTime(expirationTime),
		p.setCreatedTime(createdTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// Complete marks the payment as settled. Only pending payments can complete.
func (p *Payment) Complete() error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Expire marks the payment as expired. The payment must be pending and its
// expiration time must lie at or before now.
func (p *Payment) Expire(now time.Time) error {
	if p.expirationTime.After(now) {
		return ErrPaymentNotOverdue
	}

	newStatus, err := p.status.Expire()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// IsOverdue reports whether a pending payment has passed its deadline.
func (p *Payment) IsOverdue(now time.Time) bool {
	return p.status == Pending && !p.expirationTime.After(now)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order being paid for.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Amount returns the payment amount in minor units.
func (p *Payment) Amount() int64 {
	return p.amount
}

// Status returns the payment's current status.
func (p *Payment) Status() Status {
	return p.status
}

// ExpirationTime returns the settlement deadline.
func (p *Payment) ExpirationTime() time.Time {
	return p.expirationTime
}

// CreatedTime returns when the payment was registered.
func (p *Payment) CreatedTime() time.Time {
	return p.createdTime
}

// Deletion returns the payment's soft-delete state.
func (p *Payment) Deletion() kernel.Deletion {
	return p.deletion
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *Payment) setExpirationTime(expirationTime time.Time) error {
	if expirationTime.IsZero() {
		return errs.NewValueIsRequiredError("expirationTime")
	}
	p.expirationTime = expirationTime
	return nil
}

func (p *Payment) setCreatedTime(createdTime time.Time) error {
	if createdTime.IsZero() {
		return errs.NewValueIsRequiredError("createdTime")
	}
	p.createdTime = createdTime
	return nil
}
