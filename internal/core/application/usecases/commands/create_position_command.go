package commands

import (
	"errors"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrCreatePositionCommandIsNotConstructed = errors.New(
	"CreatePositionCommand must be created via NewCreatePositionCommand constructor",
)

// CreatePositionCommand represents a request to define a job position.
type CreatePositionCommand struct { //nolint:recvcheck //using for validation
	code        string
	label       string
	description string
	indice      int

	guard guard.ConstructorGuard
}

// NewCreatePositionCommand creates the command. The indice range is
// enforced by the aggregate.
func NewCreatePositionCommand(code, label, description string, indice int) (CreatePositionCommand, error) {
	if code == "" {
		return CreatePositionCommand{}, errs.NewValueIsRequiredError("code")
	}
	if label == "" {
		return CreatePositionCommand{}, errs.NewValueIsRequiredError("label")
	}

	return CreatePositionCommand{
		code:        code,
		label:       label,
		description: description,
		indice:      indice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePositionCommand) Validate() error {
	return c.guard.Validate(ErrCreatePositionCommandIsNotConstructed)
}

func (c CreatePositionCommand) PositionCode() string { return c.code }
func (c CreatePositionCommand) Label() string        { return c.label }
func (c CreatePositionCommand) Description() string  { return c.description }
func (c CreatePositionCommand) Indice() int          { return c.indice }
