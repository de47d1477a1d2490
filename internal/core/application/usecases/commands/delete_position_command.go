package commands

import (
	"errors"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/guard"
)

var ErrDeletePositionCommandIsNotConstructed = errors.New(
	"DeletePositionCommand must be created via NewDeletePositionCommand constructor",
)

// DeletePositionCommand represents a request to remove a job position.
type DeletePositionCommand struct { //nolint:recvcheck //using for validation
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePositionCommand creates the command.
func NewDeletePositionCommand(id kernel.UUID) (DeletePositionCommand, error) {
	if err := id.Validate(); err != nil {
		return DeletePositionCommand{}, err
	}

	return DeletePositionCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePositionCommand) Validate() error {
	return c.guard.Validate(ErrDeletePositionCommandIsNotConstructed)
}

func (c DeletePositionCommand) ID() kernel.UUID { return c.id }
