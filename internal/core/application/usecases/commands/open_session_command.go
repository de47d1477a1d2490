package commands

import (
	"errors"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrOpenSessionCommandIsNotConstructed = errors.New(
	"OpenSessionCommand must be created via NewOpenSessionCommand constructor",
)

// OpenSessionCommand represents a sign-in request.
type OpenSessionCommand struct { //nolint:recvcheck //using for validation
	login string

	guard guard.ConstructorGuard
}

// NewOpenSessionCommand creates the command.
func NewOpenSessionCommand(login string) (OpenSessionCommand, error) {
	if login == "" {
		return OpenSessionCommand{}, errs.NewValueIsRequiredError("login")
	}

	return OpenSessionCommand{
		login: login,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenSessionCommandIsNotConstructed)
}

func (c OpenSessionCommand) Login() string { return c.login }
