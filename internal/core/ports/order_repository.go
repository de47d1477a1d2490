// Package ports defines the persistence contracts between the application
// core and infrastructure. The interfaces mirror the operations the remote
// data store must offer; the core is agnostic to the transport behind them.
package ports

import (
	"context"

	"gescom/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and assigns its database serial to the
	// aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, in practice its status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its number.
	Get(ctx context.Context, number int64) (*order.Order, error)

	// GetAllReady retrieves orders in the Prete status, eligible for
	// delivery scheduling.
	GetAllReady(ctx context.Context) ([]*order.Order, error)

	// GetAllCancelledUnarchived retrieves cancelled orders that have no
	// history record yet. The history archiver drains these.
	GetAllCancelledUnarchived(ctx context.Context) ([]*order.Order, error)
}
