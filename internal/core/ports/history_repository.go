package ports

import (
	"context"
	"time"
)

// CancelledOrderRecord is the flat history row written when an order
// reaches a cancellation status. It is a snapshot, not an aggregate: the
// history table is append-only and never read back into the domain.
type CancelledOrderRecord struct {
	OrderNumber    int64
	ClientNo       int64
	OrderDate      time.Time
	CancelledAt    time.Time
	PostalCode     int
	BeforeDelivery bool
}

// HistoryRepository archives cancelled orders.
type HistoryRepository interface {
	// AddCancelledOrder appends one history row. Re-archiving the same
	// order number is a no-op for the caller but surfaces as a duplicate
	// key from the store.
	AddCancelledOrder(ctx context.Context, record CancelledOrderRecord) error

	// IsArchived reports whether an order already has a history row.
	IsArchived(ctx context.Context, orderNumber int64) (bool, error)
}
