package commands

import (
	"errors"
	"fmt"
	"time"

	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
	"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
)

// ScheduleDeliveryCommand represents a request to schedule the delivery of
// one ready order with a carrier on a date.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderNumber int64
	date        time.Time
	carrierID   int64
	timing      delivery.PaymentTiming
	method      delivery.PaymentMethod

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates the command. Order eligibility and
// carrier capacity are business rules checked by the handler against
// storage, not here.
func NewScheduleDeliveryCommand(
	orderNumber int64,
	date time.Time,
	carrierID int64,
	timing delivery.PaymentTiming,
	method delivery.PaymentMethod,
) (ScheduleDeliveryCommand, error) {
	cmd := ScheduleDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNumber(orderNumber),
		cmd.setDate(date),
		cmd.setCarrierID(carrierID),
		cmd.setTiming(timing),
		cmd.setMethod(method),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

func (c ScheduleDeliveryCommand) OrderNumber() int64             { return c.orderNumber }
func (c ScheduleDeliveryCommand) Date() time.Time                { return c.date }
func (c ScheduleDeliveryCommand) CarrierID() int64               { return c.carrierID }
func (c ScheduleDeliveryCommand) Timing() delivery.PaymentTiming { return c.timing }
func (c ScheduleDeliveryCommand) Method() delivery.PaymentMethod { return c.method }

func (c *ScheduleDeliveryCommand) setOrderNumber(orderNumber int64) error {
	if orderNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"order number", fmt.Errorf("%d is not a persisted serial", orderNumber))
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *ScheduleDeliveryCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("delivery date")
	}
	c.date = date
	return nil
}

func (c *ScheduleDeliveryCommand) setCarrierID(carrierID int64) error {
	if carrierID <= 0 {
		return errs.NewValueIsRequiredError("carrier")
	}
	c.carrierID = carrierID
	return nil
}

func (c *ScheduleDeliveryCommand) setTiming(timing delivery.PaymentTiming) error {
	if err := timing.Validate(); err != nil {
		return err
	}
	c.timing = timing
	return nil
}

func (c *ScheduleDeliveryCommand) setMethod(method delivery.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
