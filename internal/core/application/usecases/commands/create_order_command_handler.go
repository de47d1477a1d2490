package commands

import (
	"context"

	"gescom/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles order registration. Verifies the
// client reference exists, then persists a new order in the initial
// EnCours status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the database-assigned order
// number. A missing client surfaces as errs.ErrObjectNotFound.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientNo()); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.ClientNo(), cmd.Date())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.Number(), nil
}
