package queries

import (
	"errors"

	"gescom/internal/pkg/guard"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery retrieves the client directory.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// GetAllClientsQueryResponse is one client directory row.
type GetAllClientsQueryResponse struct {
	No         int64  `json:"no"`
	Name       string `json:"name"`
	FirstName  string `json:"first_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode int    `json:"postal_code"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}
