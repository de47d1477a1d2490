package commands

import (
	"context"

	"gescom/internal/core/ports"
)

// CloseSessionCommandHandler signs a staff member out by dropping the
// session token. Deleting an unknown token is not an error.
type CloseSessionCommandHandler struct {
	sessions ports.SessionStore
}

func NewCloseSessionCommandHandler(sessions ports.SessionStore) CloseSessionCommandHandler {
	return CloseSessionCommandHandler{
		sessions: sessions,
	}
}

// Handle processes the command.
func (h CloseSessionCommandHandler) Handle(ctx context.Context, cmd CloseSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.sessions.Delete(ctx, cmd.Token())
}
