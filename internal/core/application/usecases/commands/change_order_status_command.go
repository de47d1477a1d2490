package commands

import (
	"errors"
	"fmt"

	"gescom/internal/core/domain/model/order"
	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order along one
// edge of its lifecycle state machine.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64
	target      order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates the command. The target must be a
// declared status; whether the edge from the stored status exists is
// decided by the aggregate at handling time.
func NewChangeOrderStatusCommand(orderNumber int64, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderNumber returns the targeted order's number.
func (c ChangeOrderStatusCommand) OrderNumber() int64 {
	return c.orderNumber
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%d is not a persisted serial", orderNumber))
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
