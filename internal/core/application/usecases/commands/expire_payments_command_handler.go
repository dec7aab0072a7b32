package commands

import "context"

// ExpirePaymentsCommandHandler transitions overdue pending payments to the
// expired status. The whole sweep runs in a single transaction.
type ExpirePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewExpirePaymentsCommandHandler creates a handler for the payment
// expiration sweep. Requires a PaymentUoWFactory for transactional persistence.
func NewExpirePaymentsCommandHandler(uowFactory PaymentUoWFactory) ExpirePaymentsCommandHandler {
	return ExpirePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle expires every pending payment overdue as of the command's instant.
// Returns the number of payments expired.
func (h *ExpirePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpirePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()

	overdue, err := paymentRepo.GetAllOverduePending(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, overduePayment := range overdue {
		if err = overduePayment.Expire(cmd.Now()); err != nil {
			return 0, err
		}

		if err = paymentRepo.Update(ctx, overduePayment); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
