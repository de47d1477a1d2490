package commands_test

import (
	"testing"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/domain/model/staff"
	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createStaffCmd(t *testing.T) commands.CreateStaffCommand {
	t.Helper()
	cmd, err := commands.NewCreateStaffCommand(
		"Martin", "Paul", testPhone(t), "4 rue des Lilas", "Lyon",
		testDate(), "P003", "pmartin")
	require.NoError(t, err)
	return cmd
}

func TestCreateStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := createStaffCmd(t)

	pos := testPosition(t, "P003", "Livreur")
	staffRepo := new(MockStaffRepository)
	positionRepo := new(MockPositionRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PositionRepository").Return(positionRepo).Once(),
		positionRepo.On("GetByCode", mock.Anything, "P003").Return(pos, nil).Once(),
		uow.On("StaffRepository").Return(staffRepo).Once(),
		staffRepo.On("Add", mock.Anything, mock.MatchedBy(func(s *staff.Staff) bool {
			return s.Login() == "pmartin" && s.PositionCode() == "P003"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStaffCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	staffRepo.AssertExpectations(t)
	positionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateStaffCommandHandler_Handle_UnknownPosition(t *testing.T) {
	ctx := t.Context()
	cmd := createStaffCmd(t)

	staffRepo := new(MockStaffRepository)
	positionRepo := new(MockPositionRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PositionRepository").Return(positionRepo).Once(),
		positionRepo.On("GetByCode", mock.Anything, "P003").
			Return(nil, errs.NewObjectNotFoundError("code", "P003")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateStaffCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	staffRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
