package commands

import (
	"context"

	"gescom/internal/core/domain/model/order"
	"gescom/internal/core/ports"
)

// ArchiveCancelledOrdersCommandHandler sweeps cancelled orders into the
// history table. Orders already archived are skipped, so the sweep is safe
// to re-run.
type ArchiveCancelledOrdersCommandHandler struct {
	uowFactory ArchiveUoWFactory
}

func NewArchiveCancelledOrdersCommandHandler(uowFactory ArchiveUoWFactory) ArchiveCancelledOrdersCommandHandler {
	return ArchiveCancelledOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns how many orders were archived.
func (h ArchiveCancelledOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd ArchiveCancelledOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cancelled, err := uow.OrderRepository().GetAllCancelledUnarchived(ctx)
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, o := range cancelled {
		cl, err := uow.ClientRepository().Get(ctx, o.ClientNo())
		if err != nil {
			return 0, err
		}

		record := ports.CancelledOrderRecord{
			OrderNumber:    o.Number(),
			ClientNo:       o.ClientNo(),
			OrderDate:      o.Date(),
			CancelledAt:    cmd.ArchivedAt(),
			PostalCode:     cl.PostalCode(),
			BeforeDelivery: o.Status() == order.Annulee,
		}

		if err = uow.HistoryRepository().AddCancelledOrder(ctx, record); err != nil {
			return 0, err
		}
		archived++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return archived, nil
}
