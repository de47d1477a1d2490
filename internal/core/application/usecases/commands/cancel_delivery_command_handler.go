package commands

import (
	"context"
)

// CancelDeliveryCommandHandler cancels a scheduled delivery. The record is
// kept with the Annulée status rather than hard-deleted, so cancelled
// deliveries stop counting against carrier capacity but stay auditable.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for delivery
// cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the delivery, cancels it and stores the result. Cancelling
// an already terminal delivery is refused by the aggregate.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	stored, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = stored.Cancel(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, stored); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
