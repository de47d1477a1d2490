package client_test

import (
	"testing"

	"gescom/internal/core/domain/model/client"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact(t *testing.T) (kernel.Phone, kernel.Email) {
	t.Helper()
	phone, err := kernel.NewPhone("0145678901")
	require.NoError(t, err)
	email, err := kernel.NewEmail("jean.dupont@email.com")
	require.NoError(t, err)
	return phone, email
}

func TestNewClient(t *testing.T) {
	phone, email := validContact(t)

	t.Run("creates_unpersisted_record", func(t *testing.T) {
		c, err := client.NewClient("Dupont", "Jean", "15 Rue de la Paix", "Paris", 75002, phone, email)

		require.NoError(t, err)
		assert.Zero(t, c.No())
		assert.Equal(t, "Dupont", c.Name())
		assert.Equal(t, 75002, c.PostalCode())
	})

	t.Run("requires_name", func(t *testing.T) {
		_, err := client.NewClient("", "Jean", "", "", 75002, phone, email)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_postal_code", func(t *testing.T) {
		_, err := client.NewClient("Dupont", "Jean", "", "", 0, phone, email)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_validated_contact", func(t *testing.T) {
		_, err := client.NewClient("Dupont", "Jean", "", "", 75002, kernel.Phone{}, email)
		require.Error(t, err)

		_, err = client.NewClient("Dupont", "Jean", "", "", 75002, phone, kernel.Email{})
		require.Error(t, err)
	})
}

func TestRestoreClient(t *testing.T) {
	phone, email := validContact(t)

	c, err := client.RestoreClient(12, "Martin", "Sophie", "8 Avenue Victor Hugo", "Lyon", 69003, phone, email)
	require.NoError(t, err)
	assert.Equal(t, int64(12), c.No())

	_, err = client.RestoreClient(0, "Martin", "Sophie", "", "", 69003, phone, email)
	require.Error(t, err)
}

func TestClient_AssignNo(t *testing.T) {
	phone, email := validContact(t)
	c, err := client.NewClient("Dupont", "Jean", "", "", 75002, phone, email)
	require.NoError(t, err)

	require.NoError(t, c.AssignNo(31))
	assert.Equal(t, int64(31), c.No())
	require.Error(t, c.AssignNo(32))
}

func TestClient_Validate(t *testing.T) {
	var c client.Client
	require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
}
