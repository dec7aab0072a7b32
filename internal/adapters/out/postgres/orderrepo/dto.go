// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Soft deletion maps to a nullable timestamp/actor pair; active rows hold NULL
// in both columns.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status      string    `gorm:"type:varchar(100)"`
	CreatedTime time.Time
	DeletedBy   *string
	DeletedTime *time.Time `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Status:      aggregate.Status(),
		CreatedTime: aggregate.CreatedTime(),
	}

	if deletion := aggregate.Deletion(); deletion.IsDeleted() {
		by := deletion.By()
		at := deletion.At()
		dto.DeletedBy = &by
		dto.DeletedTime = &at
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	return order.RestoreOrder(id, dto.Status, dto.CreatedTime, deletion)
}
