package queries

import (
	"errors"
	"time"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves the delivery round for one calendar date:
// every delivery on that day with its carrier and destination zone. The
// dispatch screen renders this per-day view.
//
// Example:
//
//	query, err := NewGetDeliveriesQuery(day)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetDeliveriesQueryHandler(db)
//
//	round, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get deliveries: %w", err)
//	}
type GetDeliveriesQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query for one calendar date.
func NewGetDeliveriesQuery(date time.Time) (GetDeliveriesQuery, error) {
	if date.IsZero() {
		return GetDeliveriesQuery{}, errs.NewValueIsRequiredError("date")
	}

	return GetDeliveriesQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// Date returns the requested calendar date.
func (q GetDeliveriesQuery) Date() time.Time {
	return q.date
}

// GetDeliveriesQueryResponse is one delivery of the day's round. The ID
// travels as its string form so the console can address the delivery on
// the cancel and complete endpoints.
type GetDeliveriesQueryResponse struct {
	ID            string `json:"id"`
	OrderNumber   int64  `json:"order_number"`
	CarrierID     int64  `json:"carrier_id"`
	CarrierName   string `json:"carrier_name"`
	PostalCode    int    `json:"postal_code"`
	PaymentTiming string `json:"payment_timing"`
	PaymentMethod string `json:"payment_method"`
	StatusCode    string `json:"status"`
}
