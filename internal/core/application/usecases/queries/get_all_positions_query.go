package queries

import (
	"errors"

	"gescom/internal/pkg/guard"
)

var ErrGetAllPositionsQueryIsNotConstructed = errors.New(
	"GetAllPositionsQuery must be created via NewGetAllPositionsQuery constructor",
)

// GetAllPositionsQuery retrieves the position definitions with how many
// staff members hold each one.
type GetAllPositionsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllPositionsQuery() GetAllPositionsQuery {
	return GetAllPositionsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllPositionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPositionsQueryIsNotConstructed)
}

// GetAllPositionsQueryResponse is one position row. StaffCount lets the
// console grey out the delete action for referenced positions.
type GetAllPositionsQueryResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Indice      int    `json:"indice"`
	StaffCount  int64  `json:"staff_count"`
}
