package ports

import (
	"context"
	"time"

	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates, including the capacity count the scheduling rule needs.
type DeliveryRepository interface {
	// Add persists a new delivery.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery, in practice its
	// status.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrder retrieves the delivery scheduled for the given order, if
	// any. At most one exists per order.
	GetByOrder(ctx context.Context, orderNumber int64) (*delivery.Delivery, error)

	// CountActive counts deliveries in the EnCours status for the
	// (carrier, calendar date, postal zone) triple. The scheduling command
	// compares this against delivery.MaxPerCarrierZoneDay inside the same
	// transaction as the insert.
	CountActive(ctx context.Context, date time.Time, carrierID int64, postalCode int) (int64, error)

	// Delete removes a delivery record. Cancellation that must keep the
	// record uses Update with a cancelled status instead.
	Delete(ctx context.Context, id kernel.UUID) error
}
