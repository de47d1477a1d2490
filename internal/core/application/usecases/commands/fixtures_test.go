package commands_test

import (
	"testing"
	"time"

	"gescom/internal/core/domain/model/client"
	"gescom/internal/core/domain/model/kernel"
	"gescom/internal/core/domain/model/order"
	"gescom/internal/core/domain/model/position"
	"gescom/internal/core/domain/model/staff"

	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
}

func testPhone(t *testing.T) kernel.Phone {
	t.Helper()
	p, err := kernel.NewPhone("0612345678")
	require.NoError(t, err)
	return p
}

func testEmail(t *testing.T) kernel.Email {
	t.Helper()
	e, err := kernel.NewEmail("dupont@example.fr")
	require.NoError(t, err)
	return e
}

func testClient(t *testing.T, no int64, postalCode int) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(
		no, "Dupont", "Marie", "3 rue des Lilas", "Lyon",
		postalCode, testPhone(t), testEmail(t))
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, number int64, status order.Status) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(number, 7, testDate(), status)
	require.NoError(t, err)
	return o
}

func testCarrier(t *testing.T, id int64) *staff.Staff {
	t.Helper()
	s, err := staff.RestoreStaff(
		id, "Martin", "Paul", testPhone(t), "8 avenue Foch", "Lyon",
		time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), "P003", "pmartin")
	require.NoError(t, err)
	return s
}

func testPosition(t *testing.T, code, label string) *position.Position {
	t.Helper()
	p, err := position.RestorePosition(kernel.NewUUID(), code, label, "", 300)
	require.NoError(t, err)
	return p
}
