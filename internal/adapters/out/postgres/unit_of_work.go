// Package postgres provides the GORM-based Unit of Work over the business
// database. A fresh unit of work is created per command; repositories
// obtained from it share one transaction, so multi-table rules (such as the
// delivery capacity check followed by the insert) commit or roll back as a
// whole.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, ord); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"gescom/internal/adapters/out/postgres/articlerepo"
	"gescom/internal/adapters/out/postgres/clientrepo"
	"gescom/internal/adapters/out/postgres/deliveryrepo"
	"gescom/internal/adapters/out/postgres/historyrepo"
	"gescom/internal/adapters/out/postgres/orderrepo"
	"gescom/internal/adapters/out/postgres/positionrepo"
	"gescom/internal/adapters/out/postgres/staffrepo"
	"gescom/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate records an aggregate modified during the unit of work.
// Kept for post-commit processing such as an outbox or audit trail.
type trackedAggregate struct {
	ID        any
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM
// connection pool. Each Create call returns an isolated instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories obtained from it and tracks every aggregate they touch.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an already started unit
// of work is a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Safe to defer after Commit: the
// second call reports gorm.ErrInvalidTransaction, which callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns the order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// DeliveryRepository returns the delivery repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// ArticleRepository returns the catalog repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ArticleRepository() ports.ArticleRepository {
	return articlerepo.NewGormArticleRepository(uow.conn(), uow)
}

// ClientRepository returns the client repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

// StaffRepository returns the staff repository bound to the current
// transaction.
func (uow *GormUnitOfWork) StaffRepository() ports.StaffRepository {
	return staffrepo.NewGormStaffRepository(uow.conn(), uow)
}

// PositionRepository returns the position repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PositionRepository() ports.PositionRepository {
	return positionrepo.NewGormPositionRepository(uow.conn(), uow)
}

// HistoryRepository returns the cancelled-order history repository bound
// to the current transaction.
func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id any, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
