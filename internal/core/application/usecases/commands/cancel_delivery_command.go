package commands

import (
	"errors"

	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents a request to cancel a scheduled
// delivery. The related order keeps its own status; moving it back to
// Prête is a separate explicit action on the order.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates the command for the given delivery.
func NewCancelDeliveryCommand(deliveryID kernel.UUID) (CancelDeliveryCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return CancelDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the targeted delivery's identifier.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}
