package commands

import (
	"context"
	"errors"
	"fmt"

	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"
)

var (
	// ErrOrderNotReady is returned when the order to deliver is not in the
	// Prête status.
	ErrOrderNotReady = errors.New("order is not ready for delivery")

	// ErrCapacityExceeded is returned when the carrier already has the
	// maximum number of active deliveries for the date and postal zone.
	ErrCapacityExceeded = errors.New("carrier capacity exceeded for this date and zone")

	// ErrNotACarrier is returned when the assigned staff member's position
	// does not carry the delivery permission.
	ErrNotACarrier = errors.New("staff member is not a carrier")

	// ErrOrderAlreadyScheduled is returned when the order already has a
	// delivery record; at most one delivery exists per order.
	ErrOrderAlreadyScheduled = errors.New("order already has a delivery")
)

// ScheduleDeliveryCommandHandler enforces the delivery eligibility and
// capacity rules:
//
//  1. the order must currently be Prête (ErrOrderNotReady otherwise);
//  2. active deliveries for (carrier, date, client postal zone) must stay
//     under delivery.MaxPerCarrierZoneDay (ErrCapacityExceeded otherwise).
//
// The count and the insert run inside one unit-of-work transaction so two
// concurrent scheduling requests for the same triple cannot both observe
// the same pre-insert count and commit. The order's own status is left
// untouched: advancing it to Livrée is a separate explicit action.
type ScheduleDeliveryCommandHandler struct {
	uowFactory ScheduleUoWFactory
}

// NewScheduleDeliveryCommandHandler creates a handler for delivery
// scheduling.
func NewScheduleDeliveryCommandHandler(uowFactory ScheduleUoWFactory) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the new delivery's identifier.
func (h ScheduleDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ScheduleDeliveryCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stored, err := uow.OrderRepository().Get(ctx, cmd.OrderNumber())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !stored.IsReady() {
		return kernel.UUID{}, fmt.Errorf("%w: order %d is %s",
			ErrOrderNotReady, stored.Number(), stored.Status())
	}

	deliveryRepo := uow.DeliveryRepository()

	switch _, getErr := deliveryRepo.GetByOrder(ctx, cmd.OrderNumber()); {
	case getErr == nil:
		return kernel.UUID{}, fmt.Errorf("%w: order %d", ErrOrderAlreadyScheduled, cmd.OrderNumber())
	case !errors.Is(getErr, errs.ErrObjectNotFound):
		return kernel.UUID{}, getErr
	}

	carrier, err := uow.StaffRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return kernel.UUID{}, err
	}

	carrierPosition, err := uow.PositionRepository().GetByCode(ctx, carrier.PositionCode())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !carrierPosition.Role().CanDeliver() {
		return kernel.UUID{}, fmt.Errorf("%w: staff %d holds position %q",
			ErrNotACarrier, carrier.ID(), carrierPosition.Label())
	}

	orderClient, err := uow.ClientRepository().Get(ctx, stored.ClientNo())
	if err != nil {
		return kernel.UUID{}, err
	}

	active, err := deliveryRepo.CountActive(ctx, cmd.Date(), cmd.CarrierID(), orderClient.PostalCode())
	if err != nil {
		return kernel.UUID{}, err
	}
	if active >= delivery.MaxPerCarrierZoneDay {
		return kernel.UUID{}, fmt.Errorf("%w: carrier %d already has %d deliveries on %s in zone %d",
			ErrCapacityExceeded, cmd.CarrierID(), active,
			cmd.Date().Format("2006-01-02"), orderClient.PostalCode())
	}

	newDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.OrderNumber(),
		cmd.Date(),
		cmd.CarrierID(),
		orderClient.PostalCode(),
		cmd.Timing(),
		cmd.Method(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return newDelivery.ID(), nil
}
