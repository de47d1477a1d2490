package commands

import (
	"errors"
	"time"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrCreateStaffCommandIsNotConstructed = errors.New(
	"CreateStaffCommand must be created via NewCreateStaffCommand constructor",
)

// CreateStaffCommand represents a request to hire a staff member.
type CreateStaffCommand struct { //nolint:recvcheck //using for validation
	name         string
	firstName    string
	phone        kernel.Phone
	address      string
	city         string
	hireDate     time.Time
	positionCode string
	login        string

	guard guard.ConstructorGuard
}

// NewCreateStaffCommand creates the command. The position code is checked
// for presence only; its existence is verified by the handler against the
// position table.
func NewCreateStaffCommand(
	name, firstName string,
	phone kernel.Phone,
	address, city string,
	hireDate time.Time,
	positionCode, login string,
) (CreateStaffCommand, error) {
	if positionCode == "" {
		return CreateStaffCommand{}, errs.NewValueIsRequiredError("position code")
	}
	if err := phone.Validate(); err != nil {
		return CreateStaffCommand{}, err
	}

	return CreateStaffCommand{
		name:         name,
		firstName:    firstName,
		phone:        phone,
		address:      address,
		city:         city,
		hireDate:     hireDate,
		positionCode: positionCode,
		login:        login,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrCreateStaffCommandIsNotConstructed)
}

func (c CreateStaffCommand) Name() string         { return c.name }
func (c CreateStaffCommand) FirstName() string    { return c.firstName }
func (c CreateStaffCommand) Phone() kernel.Phone  { return c.phone }
func (c CreateStaffCommand) Address() string      { return c.address }
func (c CreateStaffCommand) City() string         { return c.city }
func (c CreateStaffCommand) HireDate() time.Time  { return c.hireDate }
func (c CreateStaffCommand) PositionCode() string { return c.positionCode }
func (c CreateStaffCommand) Login() string        { return c.login }
