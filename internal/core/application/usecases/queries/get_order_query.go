package queries

import (
	"errors"
	"time"

	"gescom/internal/pkg/errs"
	"gescom/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its client identity; the
// console's order detail view renders the result.
type GetOrderQuery struct {
	number int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order number.
func NewGetOrderQuery(number int64) (GetOrderQuery, error) {
	if number <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("number")
	}

	return GetOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Number() int64 { return q.number }

// GetOrderQueryResponse is the detail read model for one order.
type GetOrderQueryResponse struct {
	Number      int64     `json:"number"`
	ClientNo    int64     `json:"client_no"`
	ClientName  string    `json:"client_name"`
	ClientFirst string    `json:"client_first_name"`
	PostalCode  int       `json:"postal_code"`
	City        string    `json:"city"`
	Date        time.Time `json:"date"`
	StatusCode  string    `json:"status"`
	StatusLabel string    `json:"status_label"`
}
