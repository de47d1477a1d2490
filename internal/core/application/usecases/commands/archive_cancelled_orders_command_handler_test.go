package commands_test

import (
	"testing"
	"time"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/domain/model/order"
	"gescom/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveCancelledOrdersCommandHandler_Handle_ArchivesAll(t *testing.T) {
	ctx := t.Context()
	archivedAt := time.Date(2026, time.March, 13, 2, 0, 0, 0, time.UTC)
	cmd, err := commands.NewArchiveCancelledOrdersCommand(archivedAt)
	require.NoError(t, err)

	cancelled := []*order.Order{
		testOrder(t, 10, order.Annulee),
		testOrder(t, 11, order.AnnuleeLivree),
	}

	orderRepo := new(MockOrderRepository)
	clientRepo := new(MockClientRepository)
	historyRepo := new(MockHistoryRepository)
	uow := new(MockArchiveUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("GetAllCancelledUnarchived", mock.Anything).Return(cancelled, nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Twice()
	clientRepo.On("Get", mock.Anything, int64(7)).Return(testClient(t, 7, 69003), nil).Twice()
	uow.On("HistoryRepository").Return(historyRepo).Twice()
	historyRepo.On("AddCancelledOrder", mock.Anything, ports.CancelledOrderRecord{
		OrderNumber:    10,
		ClientNo:       7,
		OrderDate:      testDate(),
		CancelledAt:    archivedAt,
		PostalCode:     69003,
		BeforeDelivery: true,
	}).Return(nil).Once()
	historyRepo.On("AddCancelledOrder", mock.Anything, ports.CancelledOrderRecord{
		OrderNumber:    11,
		ClientNo:       7,
		OrderDate:      testDate(),
		CancelledAt:    archivedAt,
		PostalCode:     69003,
		BeforeDelivery: false,
	}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockArchiveUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveCancelledOrdersCommandHandler(factory)
	archived, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, archived)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestArchiveCancelledOrdersCommandHandler_Handle_NothingToArchive(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewArchiveCancelledOrdersCommand(time.Now().UTC())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockArchiveUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAllCancelledUnarchived", mock.Anything).Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockArchiveUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchiveCancelledOrdersCommandHandler(factory)
	archived, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, archived)
	uow.AssertExpectations(t)
}
