// Package deliveryrepo persists delivery aggregates, including the active
// count per (carrier, date, zone) that the scheduling rule reads.
package deliveryrepo

import (
	"time"

	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO is the database representation of a delivery aggregate.
// OrderNumber carries a unique index: one delivery per order.
type DeliveryDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   int64     `gorm:"uniqueIndex;not null"`
	Date          time.Time `gorm:"index:idx_deliveries_round;not null"`
	CarrierID     int64     `gorm:"index:idx_deliveries_round;not null"`
	PostalCode    int       `gorm:"index:idx_deliveries_round;not null"`
	PaymentTiming string    `gorm:"type:varchar(5);not null"`
	PaymentMethod string    `gorm:"type:varchar(3);not null"`
	Status        string    `gorm:"type:varchar(2);index;not null"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:            aggregate.ID().Bytes(),
		OrderNumber:   aggregate.OrderNumber(),
		Date:          aggregate.Date(),
		CarrierID:     aggregate.CarrierID(),
		PostalCode:    aggregate.PostalCode(),
		PaymentTiming: aggregate.Timing().Code(),
		PaymentMethod: aggregate.Method().Code(),
		Status:        aggregate.Status().Code(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	timing, err := delivery.PaymentTimingFromCode(dto.PaymentTiming)
	if err != nil {
		return nil, err
	}

	method, err := delivery.PaymentMethodFromCode(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		dto.OrderNumber,
		dto.Date,
		dto.CarrierID,
		dto.PostalCode,
		timing,
		method,
		status,
	)
}
