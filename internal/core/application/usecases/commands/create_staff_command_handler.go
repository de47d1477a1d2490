package commands

import (
	"context"

	"gescom/internal/core/domain/model/staff"
)

// CreateStaffCommandHandler handles staff registration. The referenced
// position must exist; an unknown code surfaces as errs.ErrObjectNotFound.
type CreateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

func NewCreateStaffCommandHandler(uowFactory StaffUoWFactory) CreateStaffCommandHandler {
	return CreateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the database-assigned staff
// identifier.
func (h CreateStaffCommandHandler) Handle(ctx context.Context, cmd CreateStaffCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newStaff, err := staff.NewStaff(
		cmd.Name(),
		cmd.FirstName(),
		cmd.Phone(),
		cmd.Address(),
		cmd.City(),
		cmd.HireDate(),
		cmd.PositionCode(),
		cmd.Login(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.PositionRepository().GetByCode(ctx, cmd.PositionCode()); err != nil {
		return 0, err
	}

	if err = uow.StaffRepository().Add(ctx, newStaff); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newStaff.ID(), nil
}
