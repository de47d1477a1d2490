package queries_test

import (
	"testing"

	"gescom/internal/core/application/usecases/queries"
	"gescom/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(order.Prete)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.HasFilter())
	assert.Equal(t, order.Prete, query.Status())
}

func TestNewGetOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(order.Unknown)
	require.Error(t, err)
}

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	require.NoError(t, query.Validate())
	assert.False(t, query.HasFilter())
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
