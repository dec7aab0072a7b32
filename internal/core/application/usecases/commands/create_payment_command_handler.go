package commands

import (
	"context"
	"time"

	"handmade/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler registers pending payments.
// The target order must exist and not be soft deleted.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for payment registration.
// Requires a PaymentUoWFactory for transactional persistence.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment registration command.
// Fails with an object-not-found error when the order is absent or deleted.
func (h *CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	paymentRepo := uow.PaymentRepository()

	if _, err := orderRepo.GetActive(ctx, cmd.OrderID()); err != nil {
		return err
	}

	newPayment, err := payment.NewPayment(
		cmd.PaymentID(),
		cmd.OrderID(),
		cmd.Amount(),
		cmd.ExpirationTime(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, newPayment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
