package commands

import (
	"context"
	"errors"
	"time"

	"handmade/internal/pkg/errs"
)

// ErrOrderIDCannotChange is returned when an update supplies an order ID that
// differs from the one stored on the record.
var ErrOrderIDCannotChange = errors.New("order id cannot change when updating a status change")

// UpdateStatusChangeCommandHandler rewrites an existing status-change record,
// re-running the same temporal validation as an append. The record under
// update is excluded from its own ordering check: the comparison runs against
// what would be the latest prior record after the rewrite.
type UpdateStatusChangeCommandHandler struct {
	uowFactory StatusChangeUoWFactory
}

// NewUpdateStatusChangeCommandHandler creates a handler for status-change updates.
// Requires a StatusChangeUoWFactory for transactional persistence.
func NewUpdateStatusChangeCommandHandler(uowFactory StatusChangeUoWFactory) UpdateStatusChangeCommandHandler {
	return UpdateStatusChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
// Fails with an object-not-found error when the record is absent or soft
// deleted, with ErrOrderIDCannotChange on an order-reference mismatch, and
// with the append-time temporal errors when the new change time is invalid.
func (h *UpdateStatusChangeCommandHandler) Handle(ctx context.Context, cmd UpdateStatusChangeCommand) error {
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

	statusChangeRepo := uow.StatusChangeRepository()
	orderRepo := uow.OrderRepository()

	record, err := statusChangeRepo.Get(ctx, cmd.StatusChangeID())
	if err != nil {
		return err
	}

	if record.IsDeleted() {
		return errs.NewObjectNotFoundError("statusChangeId", cmd.StatusChangeID().String())
	}

	if !record.OrderID().IsEqual(cmd.OrderID()) {
		return ErrOrderIDCannotChange
	}

	// Same per-order lock as an append: the rewrite races with concurrent
	// appends over the same ordering invariant.
	if _, err = orderRepo.GetActiveForUpdate(ctx, record.OrderID()); err != nil {
		return err
	}

	latest, err := statusChangeRepo.GetLatestForOrderExcluding(ctx, record.OrderID(), record.ID())
	if err = ensureChangeTimeAfterLatest(cmd.ChangeTime(), latest, err); err != nil {
		return err
	}

	if err = record.Edit(cmd.Status(), cmd.ChangeTime(), cmd.Actor(), time.Now().UTC()); err != nil {
		return err
	}

	if err = statusChangeRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
