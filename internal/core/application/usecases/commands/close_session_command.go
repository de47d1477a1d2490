package commands

import (
	"errors"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrCloseSessionCommandIsNotConstructed = errors.New(
	"CloseSessionCommand must be created via NewCloseSessionCommand constructor",
)

// CloseSessionCommand represents a sign-out request.
type CloseSessionCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewCloseSessionCommand creates the command.
func NewCloseSessionCommand(token string) (CloseSessionCommand, error) {
	if token == "" {
		return CloseSessionCommand{}, errs.NewValueIsRequiredError("token")
	}

	return CloseSessionCommand{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseSessionCommand) Validate() error {
	return c.guard.Validate(ErrCloseSessionCommandIsNotConstructed)
}

func (c CloseSessionCommand) Token() string { return c.token }
