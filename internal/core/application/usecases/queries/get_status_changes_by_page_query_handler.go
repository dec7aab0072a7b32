package queries

import (
	"context"
	"time"

	"handmade/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusChangesByPageQueryHandler reads ledger pages from the database.
// Only non-deleted records are visible; ordering is by change time with the
// record id as a tiebreaker so pagination is stable across requests.
type GetStatusChangesByPageQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusChangesByPageQueryHandler creates a handler for ledger page queries.
// Requires a GORM database connection for query execution.
func NewGetStatusChangesByPageQueryHandler(db *gorm.DB) GetStatusChangesByPageQueryHandler {
	return GetStatusChangesByPageQueryHandler{db: db}
}

// Handle executes the query and returns the requested page.
// A page beyond the end of the ledger returns an empty slice, not an error.
func (h GetStatusChangesByPageQueryHandler) Handle(
	ctx context.Context,
	query GetStatusChangesByPageQuery,
) ([]GetStatusChangesByPageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statusChanges := make([]GetStatusChangesByPageQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			change_time
		FROM status_changes
		WHERE deleted_time IS NULL
		ORDER BY change_time, id
		LIMIT ? OFFSET ?
	`, query.PageSize(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStatusChangesByPageQueryResponse
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

	return statusChanges, nil
}
