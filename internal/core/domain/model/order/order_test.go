package order_test

import (
	"testing"
	"time"

	"gescom/internal/core/domain/model/order"
	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_in_EnCours_without_number", func(t *testing.T) {
		o, err := order.NewOrder(42, testDate())

		require.NoError(t, err)
		assert.Equal(t, order.EnCours, o.Status())
		assert.Equal(t, int64(42), o.ClientNo())
		assert.Zero(t, o.Number())
		assert.False(t, o.IsReady())
	})

	t.Run("requires_client", func(t *testing.T) {
		_, err := order.NewOrder(0, testDate())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_date", func(t *testing.T) {
		_, err := order.NewOrder(42, time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_any_valid_status", func(t *testing.T) {
		o, err := order.RestoreOrder(7, 42, testDate(), order.Prete)

		require.NoError(t, err)
		assert.Equal(t, int64(7), o.Number())
		assert.Equal(t, order.Prete, o.Status())
		assert.True(t, o.IsReady())
	})

	t.Run("rejects_unpersisted_number", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 42, testDate(), order.EnCours)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(7, 42, testDate(), order.Unknown)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil_is_rejected", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_RequestTransition(t *testing.T) {
	t.Run("full_happy_path_to_delivered", func(t *testing.T) {
		o, err := order.NewOrder(42, testDate())
		require.NoError(t, err)

		require.NoError(t, o.RequestTransition(order.Prete))
		assert.Equal(t, order.Prete, o.Status())

		require.NoError(t, o.RequestTransition(order.Livree))
		assert.Equal(t, order.Livree, o.Status())

		// Livree is terminal; nothing leaves it.
		err = o.RequestTransition(order.Sortie)
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Livree, o.Status())
	})

	t.Run("refused_transition_keeps_state", func(t *testing.T) {
		o, err := order.NewOrder(42, testDate())
		require.NoError(t, err)

		err = o.RequestTransition(order.Livree) // EC -> lI is not an edge
		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.EnCours, o.Status())
	})

	t.Run("cancellation_paths", func(t *testing.T) {
		fromEnCours, err := order.NewOrder(42, testDate())
		require.NoError(t, err)
		require.NoError(t, fromEnCours.RequestTransition(order.Annulee))

		fromPrete, err := order.RestoreOrder(7, 42, testDate(), order.Prete)
		require.NoError(t, err)
		require.NoError(t, fromPrete.RequestTransition(order.AnnuleeLivree))
	})
}

func TestOrder_AssignNumber(t *testing.T) {
	t.Run("assigns_once", func(t *testing.T) {
		o, err := order.NewOrder(42, testDate())
		require.NoError(t, err)

		require.NoError(t, o.AssignNumber(101))
		assert.Equal(t, int64(101), o.Number())

		require.Error(t, o.AssignNumber(102))
		assert.Equal(t, int64(101), o.Number())
	})

	t.Run("rejects_non_positive", func(t *testing.T) {
		o, err := order.NewOrder(42, testDate())
		require.NoError(t, err)
		require.Error(t, o.AssignNumber(0))
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.RestoreOrder(7, 42, testDate(), order.EnCours)
	require.NoError(t, err)
	b, err := order.RestoreOrder(7, 99, testDate(), order.Prete)
	require.NoError(t, err)
	c, err := order.RestoreOrder(8, 42, testDate(), order.EnCours)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
