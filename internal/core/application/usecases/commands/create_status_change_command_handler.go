package commands

import (
	"context"
	"errors"
	"time"

	"handmade/internal/core/domain/model/statuschange"
	"handmade/internal/core/domain/services"
	"handmade/internal/pkg/errs"
)

// CreateStatusChangeCommandHandler appends status transitions to an order's
// history while enforcing the temporal ordering invariants.
//
// The handler locks the target order's row for the duration of the
// transaction, so the latest-prior lookup and the insert behave as one atomic
// step per order. Appends for different orders do not contend.
type CreateStatusChangeCommandHandler struct {
	uowFactory StatusChangeUoWFactory
}

// NewCreateStatusChangeCommandHandler creates a handler for status-change appends.
// Requires a StatusChangeUoWFactory for transactional persistence.
func NewCreateStatusChangeCommandHandler(uowFactory StatusChangeUoWFactory) CreateStatusChangeCommandHandler {
	return CreateStatusChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the append command.
// Fails with an object-not-found error when the order is absent or deleted,
// with a value-is-invalid error when the change time lies in the future, and
// with services.ErrChangeTimeOutOfOrder when it does not lie strictly after
// the latest non-deleted change for the order.
func (h *CreateStatusChangeCommandHandler) Handle(ctx context.Context, cmd CreateStatusChangeCommand) error {
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
	statusChangeRepo := uow.StatusChangeRepository()

	// Locking the order row serializes concurrent appends for this order.
	if _, err := orderRepo.GetActiveForUpdate(ctx, cmd.OrderID()); err != nil {
		return err
	}

	record, err := statuschange.NewStatusChange(
		cmd.StatusChangeID(),
		cmd.OrderID(),
		cmd.Status(),
		cmd.ChangeTime(),
		cmd.Actor(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	latest, err := statusChangeRepo.GetLatestForOrder(ctx, cmd.OrderID())
	if err = ensureChangeTimeAfterLatest(cmd.ChangeTime(), latest, err); err != nil {
		return err
	}

	if err = statusChangeRepo.Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// ensureChangeTimeAfterLatest applies the chronology rule against the latest
// non-deleted record. A not-found lookup means the order has no visible
// history, which the domain service accepts as an empty ledger.
func ensureChangeTimeAfterLatest(
	changeTime time.Time,
	latest *statuschange.StatusChange,
	lookupErr error,
) error {
	if lookupErr != nil {
		if !errors.Is(lookupErr, errs.ErrObjectNotFound) {
			return lookupErr
		}
		latest = nil
	}

	return services.NewLedgerChronology().EnsureAppendAfter(changeTime, latest)
}
