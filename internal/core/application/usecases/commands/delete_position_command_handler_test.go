package commands_test

import (
	"testing"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeletePositionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeletePositionCommand(id)
	require.NoError(t, err)

	positionRepo := new(MockPositionRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockDeletePositionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PositionRepository").Return(positionRepo).Once(),
		positionRepo.On("Get", mock.Anything, id).
			Return(testPosition(t, "P004", "Chef Livreur"), nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("CountByPositionCode", mock.Anything, "P004").Return(int64(0), nil).Once(),
		uow.On("PositionRepository").Return(positionRepo).Once(),
		positionRepo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeletePositionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeletePositionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	positionRepo.AssertExpectations(t)
	staffRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeletePositionCommandHandler_Handle_PositionInUse(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeletePositionCommand(id)
	require.NoError(t, err)

	positionRepo := new(MockPositionRepository)
	staffRepo := new(MockStaffRepository)
	uow := new(MockDeletePositionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PositionRepository").Return(positionRepo).Once(),
		positionRepo.On("Get", mock.Anything, id).
			Return(testPosition(t, "P003", "Livreur"), nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("CountByPositionCode", mock.Anything, "P003").Return(int64(2), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeletePositionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeletePositionCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrPositionInUse)

	var inUse *commands.PositionInUseError
	require.ErrorAs(t, err, &inUse)
	require.Equal(t, "P003", inUse.Code)
	require.Equal(t, int64(2), inUse.Count)

	positionRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
