// Package commands contains business operations that modify system state.
// Implements the Command pattern for the write side: each command is a
// validated value object, each handler manages one transaction through a
// unit of work and surfaces failures to the caller without retrying.
package commands

import (
	"context"

	"gescom/internal/core/ports"
)

// Unit of Work interfaces scoped to what each handler actually touches.
// Handlers depend on the narrowest factory that covers their repositories.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	ArticleRepoFactory interface {
		ArticleRepository() ports.ArticleRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	StaffRepoFactory interface {
		StaffRepository() ports.StaffRepository
	}

	PositionRepoFactory interface {
		PositionRepository() ports.PositionRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// OrderUoW covers order creation and status changes: the order table
	// plus the client lookup used to verify the reference on creation.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ScheduleUoW covers delivery scheduling: eligibility reads the order,
	// the zone comes from the client, carrier vetting reads staff and
	// position, and the capacity count plus insert hit the delivery table –
	// all inside one transaction.
	ScheduleUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		ClientRepoFactory
		StaffRepoFactory
		PositionRepoFactory
	}

	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}

	// DeliveryUoW covers operations on a single delivery record.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	ArticleUoW interface {
		TxManager
		ArticleRepoFactory
	}

	ArticleUoWFactory interface {
		Create() ArticleUoW
	}

	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// StaffUoW covers staff creation (which checks the referenced position
	// exists) and position deletion (which counts referencing staff).
	StaffUoW interface {
		TxManager
		StaffRepoFactory
		PositionRepoFactory
	}

	StaffUoWFactory interface {
		Create() StaffUoW
	}

	PositionUoW interface {
		TxManager
		PositionRepoFactory
	}

	PositionUoWFactory interface {
		Create() PositionUoW
	}

	// DeletePositionUoW pairs the position delete with the staff count that
	// guards it.
	DeletePositionUoW interface {
		TxManager
		PositionRepoFactory
		StaffRepoFactory
	}

	DeletePositionUoWFactory interface {
		Create() DeletePositionUoW
	}

	// ArchiveUoW covers the cancelled-order archiver: it reads orders and
	// client zones and appends history rows.
	ArchiveUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		HistoryRepoFactory
	}

	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}
)
