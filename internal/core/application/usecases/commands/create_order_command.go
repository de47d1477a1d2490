package commands

import (
	"errors"
	"time"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new order for a
// client. The order number is assigned by the database on insert.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientNo int64
	date     time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates the command, validating that a client
// reference and a business date are present.
func NewCreateOrderCommand(clientNo int64, date time.Time) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientNo(clientNo),
		cmd.setDate(date),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientNo returns the ordering client's number.
func (c CreateOrderCommand) ClientNo() int64 {
	return c.clientNo
}

// Date returns the business date of the order.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c *CreateOrderCommand) setClientNo(clientNo int64) error {
	if clientNo <= 0 {
		return errs.NewValueIsRequiredError("client number")
	}
	c.clientNo = clientNo
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	c.date = date
	return nil
}
