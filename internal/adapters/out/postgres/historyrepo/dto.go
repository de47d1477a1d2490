// Package historyrepo persists the append-only cancelled-order history.
// Rows are flat snapshots written by the nightly archiver and never read
// back into the domain.
package historyrepo

import (
	"time"

	"gescom/internal/core/ports"
)

// CancelledOrderDTO is one history row. The order number is the primary
// key, so re-archiving the same order violates the constraint instead of
// duplicating history.
type CancelledOrderDTO struct {
	OrderNumber    int64     `gorm:"primaryKey"`
	ClientNo       int64     `gorm:"index;not null"`
	OrderDate      time.Time `gorm:"not null"`
	CancelledAt    time.Time `gorm:"not null"`
	PostalCode     int       `gorm:"not null"`
	BeforeDelivery bool      `gorm:"not null"`
}

// TableName overrides GORM's default naming to use
// "cancelled_orders_history".
func (CancelledOrderDTO) TableName() string {
	return "cancelled_orders_history"
}

func fromRecord(record ports.CancelledOrderRecord) CancelledOrderDTO {
	return CancelledOrderDTO{
		OrderNumber:    record.OrderNumber,
		ClientNo:       record.ClientNo,
		OrderDate:      record.OrderDate,
		CancelledAt:    record.CancelledAt,
		PostalCode:     record.PostalCode,
		BeforeDelivery: record.BeforeDelivery,
	}
}
