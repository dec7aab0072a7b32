// Package statuschangerepo provides data transfer objects and mapping
// functions for status-change persistence. The composite index on
// (order_id, change_time) backs both the latest-prior lookup on writes and the
// chronological history reads.
package statuschangerepo

import (
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/statuschange"

	"github.com/google/uuid"
)

// StatusChangeDTO represents the database structure for persisting
// status-change records. Soft deletion maps to a nullable timestamp/actor
// pair; active rows hold NULL in both columns.
type StatusChangeDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index:idx_status_changes_order_change,priority:1"`
	Status          string    `gorm:"type:varchar(100)"`
	ChangeTime      time.Time `gorm:"index:idx_status_changes_order_change,priority:2"`
	CreatedBy       string
	CreatedTime     time.Time
	LastUpdatedBy   string
	LastUpdatedTime time.Time
	DeletedBy       *string
	DeletedTime     *time.Time `gorm:"index"`
}

// TableName specifies the database table name for status-change records.
func (StatusChangeDTO) TableName() string {
	return "status_changes"
}

// fromDomain converts a status-change aggregate to its database representation.
func fromDomain(aggregate *statuschange.StatusChange) StatusChangeDTO {
	dto := StatusChangeDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		Status:          aggregate.Status(),
		ChangeTime:      aggregate.ChangeTime(),
		CreatedBy:       aggregate.CreatedBy(),
		CreatedTime:     aggregate.CreatedTime(),
		LastUpdatedBy:   aggregate.LastUpdatedBy(),
		LastUpdatedTime: aggregate.LastUpdatedTime(),
	}

	if deletion := aggregate.Deletion(); deletion.IsDeleted() {
		by := deletion.By()
		at := deletion.At()
		dto.DeletedBy = &by
		dto.DeletedTime = &at
	}

	return dto
}

// toDomain converts a database DTO to a status-change aggregate.
func toDomain(dto StatusChangeDTO) (*statuschange.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	deletion := kernel.NotDeleted()
	if dto.DeletedTime != nil {
		var by string
		if dto.DeletedBy != nil {
			by = *dto.DeletedBy
		}
		deletion, err = kernel.DeletedBy(by, *dto.DeletedTime)
		if err != nil {
			return nil, err
		}
	}

	return statuschange.RestoreStatusChange(
		id,
		orderID,
		dto.Status,
		dto.ChangeTime,
		dto.CreatedBy,
		dto.CreatedTime,
		dto.LastUpdatedBy,
		dto.LastUpdatedTime,
		deletion,
	)
}
