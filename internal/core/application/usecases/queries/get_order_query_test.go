package queries_test

import (
	"testing"

	"gescom/internal/core/application/usecases/queries"
	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	query, err := queries.NewGetOrderQuery(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), query.Number())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidNumber(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrderQuery(-3)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_NotConstructed(t *testing.T) {
	var query queries.GetOrderQuery
	require.ErrorIs(t, query.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}
