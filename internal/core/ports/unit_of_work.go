package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// keeping concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Client code
// manages the transaction lifecycle explicitly; repositories obtained from
// the unit of work operate within the transaction started by Begin.
//
// The delivery scheduling command relies on this: the capacity count and
// the insert run in one transaction so the check and the write commit
// together rather than racing as two independent calls.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	ArticleRepository() ArticleRepository
	ClientRepository() ClientRepository
	StaffRepository() StaffRepository
	PositionRepository() PositionRepository
	HistoryRepository() HistoryRepository
}
