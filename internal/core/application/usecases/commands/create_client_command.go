package commands

import (
	"errors"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name       string
	firstName  string
	address    string
	city       string
	postalCode int
	phone      kernel.Phone
	email      kernel.Email

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates the command. Phone and email arrive as
// validated value objects, so a malformed contact never reaches a handler.
func NewCreateClientCommand(
	name, firstName, address, city string,
	postalCode int,
	phone kernel.Phone,
	email kernel.Email,
) (CreateClientCommand, error) {
	if err := errors.Join(phone.Validate(), email.Validate()); err != nil {
		return CreateClientCommand{}, err
	}

	return CreateClientCommand{
		name:       name,
		firstName:  firstName,
		address:    address,
		city:       city,
		postalCode: postalCode,
		phone:      phone,
		email:      email,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

func (c CreateClientCommand) Name() string        { return c.name }
func (c CreateClientCommand) FirstName() string   { return c.firstName }
func (c CreateClientCommand) Address() string     { return c.address }
func (c CreateClientCommand) City() string        { return c.city }
func (c CreateClientCommand) PostalCode() int     { return c.postalCode }
func (c CreateClientCommand) Phone() kernel.Phone { return c.phone }
func (c CreateClientCommand) Email() kernel.Email { return c.email }
