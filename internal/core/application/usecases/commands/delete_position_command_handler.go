package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrPositionInUse is returned when a position delete is refused because
// staff members still reference it.
var ErrPositionInUse = errors.New("position is referenced by staff members")

// PositionInUseError carries the position code and how many staff members
// still hold it.
type PositionInUseError struct {
	Code  string
	Count int64
}

func NewPositionInUseError(code string, count int64) *PositionInUseError {
	return &PositionInUseError{Code: code, Count: count}
}

func (e *PositionInUseError) Error() string {
	return fmt.Sprintf("position is referenced by staff members: %s (staff count: %d)", e.Code, e.Count)
}

func (e *PositionInUseError) Unwrap() error {
	return ErrPositionInUse
}

// DeletePositionCommandHandler removes a job position. A position still
// held by staff members cannot be deleted; the count check and the delete
// run inside one transaction.
type DeletePositionCommandHandler struct {
	uowFactory DeletePositionUoWFactory
}

func NewDeletePositionCommandHandler(uowFactory DeletePositionUoWFactory) DeletePositionCommandHandler {
	return DeletePositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command.
func (h DeletePositionCommandHandler) Handle(ctx context.Context, cmd DeletePositionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pos, err := uow.PositionRepository().Get(ctx, cmd.ID())
	if err != nil {
		return err
	}

	count, err := uow.StaffRepository().CountByPositionCode(ctx, pos.Code())
	if err != nil {
		return err
	}
	if count > 0 {
		return NewPositionInUseError(pos.Code(), count)
	}

	if err = uow.PositionRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
