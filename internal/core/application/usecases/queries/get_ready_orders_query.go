package queries

import (
	"errors"
	"time"

	"gescom/internal/pkg/guard"
)

var ErrGetReadyOrdersQueryIsNotConstructed = errors.New(
	"GetReadyOrdersQuery must be created via NewGetReadyOrdersQuery constructor",
)

// GetReadyOrdersQuery retrieves orders in the Prête status together with
// the client's delivery zone. The scheduling screen offers exactly these
// orders, so the list also carries what the capacity rule will need.
type GetReadyOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetReadyOrdersQuery creates a parameterless query over ready orders.
func NewGetReadyOrdersQuery() GetReadyOrdersQuery {
	return GetReadyOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetReadyOrdersQueryIsNotConstructed)
}

// GetReadyOrdersQueryResponse is one schedulable order with the postal
// zone its delivery would count against.
type GetReadyOrdersQueryResponse struct {
	Number      int64     `json:"number"`
	ClientNo    int64     `json:"client_no"`
	ClientName  string    `json:"client_name"`
	ClientFirst string    `json:"client_first_name"`
	Date        time.Time `json:"date"`
	PostalCode  int       `json:"postal_code"`
	City        string    `json:"city"`
}
