package commands

import (
	"context"
	"time"

	"handmade/internal/pkg/errs"
)

// DeleteStatusChangeCommandHandler soft deletes status-change records.
// Neighboring records are not renumbered or revalidated; the ordering
// invariant is only enforced on future writes.
type DeleteStatusChangeCommandHandler struct {
	uowFactory StatusChangeUoWFactory
}

// NewDeleteStatusChangeCommandHandler creates a handler for status-change deletions.
// Requires a StatusChangeUoWFactory for transactional persistence.
func NewDeleteStatusChangeCommandHandler(uowFactory StatusChangeUoWFactory) DeleteStatusChangeCommandHandler {
	return DeleteStatusChangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Fails with an object-not-found error when the record is absent or already
// soft deleted.
func (h *DeleteStatusChangeCommandHandler) Handle(ctx context.Context, cmd DeleteStatusChangeCommand) error {
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

	record, err := statusChangeRepo.Get(ctx, cmd.StatusChangeID())
	if err != nil {
		return err
	}

	if record.IsDeleted() {
		return errs.NewObjectNotFoundError("statusChangeId", cmd.StatusChangeID().String())
	}

	if err = record.MarkDeleted(cmd.Actor(), time.Now().UTC()); err != nil {
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
