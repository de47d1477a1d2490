package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler applies a status transition request to a
// stored order. A refused edge surfaces as order.ErrInvalidTransition with
// the attempted endpoints; the stored state is left untouched and the
// request is not retried.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, asks the aggregate for the transition and stores
// the result when the state machine allows the edge.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	stored, err := orderRepo.Get(ctx, cmd.OrderNumber())
	if err != nil {
		return err
	}

	if err = stored.RequestTransition(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, stored); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
