// Package queries contains the read side: handlers run raw SQL against the
// store and return flat read models, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"gescom/internal/core/domain/model/order"
	"gescom/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders with their client identity, optionally
// restricted to one status. The console's order board renders this list.
//
// Example:
//
//	query, err := NewGetOrdersQuery(order.EnCours)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetOrdersQuery struct {
	status    order.Status
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query restricted to one status. The status
// must be declared in the order lifecycle.
func NewGetOrdersQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		status:    status,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// NewGetAllOrdersQuery creates an unrestricted query over every order.
func NewGetAllOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// HasFilter reports whether the query restricts to one status.
func (q GetOrdersQuery) HasFilter() bool {
	return q.hasFilter
}

// Status returns the requested status filter; meaningful only when
// HasFilter is true.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// GetOrdersQueryResponse is one row of the order board: the order, its
// lifecycle position and the ordering client's identity.
type GetOrdersQueryResponse struct {
	Number      int64     `json:"number"`
	ClientNo    int64     `json:"client_no"`
	ClientName  string    `json:"client_name"`
	ClientFirst string    `json:"client_first_name"`
	Date        time.Time `json:"date"`
	StatusCode  string    `json:"status"`
	StatusLabel string    `json:"status_label"`
}
