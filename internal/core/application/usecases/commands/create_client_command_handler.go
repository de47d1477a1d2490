package commands

import (
	"context"

	"gescom/internal/core/domain/model/client"
)

// CreateClientCommandHandler handles client registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the database-assigned client
// number.
func (h CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	newClient, err := client.NewClient(
		cmd.Name(),
		cmd.FirstName(),
		cmd.Address(),
		cmd.City(),
		cmd.PostalCode(),
		cmd.Phone(),
		cmd.Email(),
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

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newClient.No(), nil
}
