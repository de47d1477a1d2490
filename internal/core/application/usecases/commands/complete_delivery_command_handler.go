package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler marks a delivery as done. Once completed
// the delivery stops counting against carrier capacity. The related
// order's own move to Livrée is a separate status change so the two
// records stay independently auditable.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the delivery, completes it and stores the result.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = stored.MarkDelivered(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, stored); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
