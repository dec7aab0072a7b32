// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payments.
// The expiration-time index backs the overdue sweep.
type PaymentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	Amount         int64
	Status         int
	ExpirationTime time.Time `gorm:"index"`
	CreatedTime    time.Time
	DeletedBy      *string
	DeletedTime    *time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	dto := PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Amount:         aggregate.Amount(),
		Status:         int(aggregate.Status()),
		ExpirationTime: aggregate.ExpirationTime(),
		CreatedTime:    aggregate.CreatedTime(),
	}

	if deletion := aggregate.Deletion(); deletion.IsDeleted() {
		by := deletion.By()
		at := deletion.At()
		dto.DeletedBy = &by
		dto.DeletedTime = &at
	}

	return dto
}

// toDomain converts a database DTO to a payment aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
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

	return payment.RestorePayment(
		id,
		orderID,
		dto.Amount,
		payment.Status(dto.Status),
		dto.ExpirationTime,
		dto.CreatedTime,
		deletion,
	)
}
