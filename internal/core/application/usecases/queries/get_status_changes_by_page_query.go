// Package queries contains read operations that project persisted state into
// response models. Query handlers read the database directly with raw SQL,
// bypassing the domain aggregates, per the CQRS split.
package queries

import (
	"errors"
	"fmt"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/errs"
	"handmade/internal/pkg/guard"
)

var (
	ErrGetStatusChangesByPageQueryIsNotConstructed = errors.New(
		"GetStatusChangesByPageQuery must be created via NewGetStatusChangesByPageQuery constructor",
	)
)

// GetStatusChangesByPageQuery retrieves a page of the status-change ledger
// across all orders. Soft-deleted records are excluded; results are ordered by
// change time so a page reads as a chronological slice of the ledger.
//
// Example:
//
//	query, err := NewGetStatusChangesByPageQuery(1, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid page request: %w", err)
//	}
//
//	handler := NewGetStatusChangesByPageQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read ledger page: %w", err)
//	}
//
//	fmt.Printf("Page holds %d status changes\n", len(page))
type GetStatusChangesByPageQuery struct {
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetStatusChangesByPageQuery creates a query for one ledger page.
// Pages are numbered from 1; both page and pageSize must be at least 1.
func NewGetStatusChangesByPageQuery(page, pageSize int) (GetStatusChangesByPageQuery, error) {
	if page < 1 {
		return GetStatusChangesByPageQuery{}, errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is less than 1", page))
	}
	if pageSize < 1 {
		return GetStatusChangesByPageQuery{}, errs.NewValueIsInvalidErrorWithCause("pageSize",
			fmt.Errorf("%d is less than 1", pageSize))
	}

	return GetStatusChangesByPageQuery{
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusChangesByPageQueryIsNotConstructed if validation fails.
func (q GetStatusChangesByPageQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusChangesByPageQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetStatusChangesByPageQuery) Page() int {
	return q.page
}

// PageSize returns the number of records per page.
func (q GetStatusChangesByPageQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the number of records to skip before the requested page.
func (q GetStatusChangesByPageQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

// GetStatusChangesByPageQueryResponse represents one ledger record in a page.
type GetStatusChangesByPageQueryResponse struct {
	ID         kernel.UUID
	OrderID    kernel.UUID
	Status     string
	ChangeTime time.Time
}
