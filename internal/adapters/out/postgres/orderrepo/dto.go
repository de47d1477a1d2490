// Package orderrepo persists order aggregates. Orders are keyed by a
// database serial; the lifecycle status is stored as its two-letter code.
package orderrepo

import (
	"time"

	"gescom/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order aggregate.
type OrderDTO struct {
	Number   int64     `gorm:"primaryKey;autoIncrement"`
	ClientNo int64     `gorm:"index;not null"`
	Date     time.Time `gorm:"not null"`
	Status   string    `gorm:"type:varchar(2);index;not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		Number:   aggregate.Number(),
		ClientNo: aggregate.ClientNo(),
		Date:     aggregate.Date(),
		Status:   aggregate.Status().Code(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromCode(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(dto.Number, dto.ClientNo, dto.Date, status)
}
