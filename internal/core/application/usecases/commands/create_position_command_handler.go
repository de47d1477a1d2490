package commands

import (
	"context"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/position"
)

// CreatePositionCommandHandler handles job position creation. Code
// uniqueness is enforced by storage.
type CreatePositionCommandHandler struct {
	uowFactory PositionUoWFactory
}

func NewCreatePositionCommandHandler(uowFactory PositionUoWFactory) CreatePositionCommandHandler {
	return CreatePositionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the new position's identifier.
func (h CreatePositionCommandHandler) Handle(ctx context.Context, cmd CreatePositionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	newPosition, err := position.NewPosition(
		kernel.NewUUID(),
		cmd.PositionCode(),
		cmd.Label(),
		cmd.Description(),
		cmd.Indice(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PositionRepository().Add(ctx, newPosition); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newPosition.ID(), nil
}
