package queries

import (
	"context"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusChangesByOrderQueryHandler reads one order's status history from
// the database. Soft-deleted records are excluded.
type GetStatusChangesByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusChangesByOrderQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetStatusChangesByOrderQueryHandler(db *gorm.DB) GetStatusChangesByOrderQueryHandler {
	return GetStatusChangesByOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order's history sorted by change
// time. Returns an object-not-found error when no visible records exist for
// the order, whether it never had any or they were all soft deleted.
func (h GetStatusChangesByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetStatusChangesByOrderQuery,
) ([]GetStatusChangesByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statusChanges := make([]GetStatusChangesByOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			change_time
		FROM status_changes
		WHERE order_id = ? AND deleted_time IS NULL
		ORDER BY change_time, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStatusChangesByOrderQueryResponse
		var id, orderID uuid.UUID
		var status string
		var changeTime time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&status,
			&changeTime,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = recordID

		recordOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = recordOrderID

		resp.Status = status
		resp.ChangeTime = changeTime
		statusChanges = append(statusChanges, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(statusChanges) == 0 {
		return nil, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	return statusChanges, nil
}
