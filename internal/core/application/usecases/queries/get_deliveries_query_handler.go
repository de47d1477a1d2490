package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler reads one day's delivery round from the
// database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery round
// queries.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Deliveries are matched on the calendar date
// regardless of the stored time component, joined with the carrier's name
// and sorted by carrier then zone so a round reads top to bottom.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) ([]GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_number,
			d.carrier_id,
			s.name,
			d.postal_code,
			d.payment_timing,
			d.payment_method,
			d.status
		FROM deliveries d
		JOIN staff s ON s.id = d.carrier_id
		WHERE DATE(d.date) = DATE(?)
		ORDER BY d.carrier_id, d.postal_code
	`, query.Date()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetDeliveriesQueryResponse, 0)

	for rows.Next() {
		var resp GetDeliveriesQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.CarrierID,
			&resp.CarrierName,
			&resp.PostalCode,
			&resp.PaymentTiming,
			&resp.PaymentMethod,
			&resp.StatusCode,
		); err != nil {
			return nil, err
		}

		resp.ID = id.String()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
