package commands_test

import (
	"testing"
	"time"

	"gescom/internal/core/application/usecases/commands"
	"gescom/internal/core/domain/model/delivery"
	"gescom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleDeliveryCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewScheduleDeliveryCommand(
		42, testDate(), 3, delivery.BeforeDelivery, delivery.Cheque)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.OrderNumber())
	assert.Equal(t, testDate(), cmd.Date())
	assert.Equal(t, int64(3), cmd.CarrierID())
	assert.Equal(t, delivery.BeforeDelivery, cmd.Timing())
	assert.Equal(t, delivery.Cheque, cmd.Method())
}

func TestNewScheduleDeliveryCommand_InvalidOrderNumber(t *testing.T) {
	_, err := commands.NewScheduleDeliveryCommand(
		0, testDate(), 3, delivery.AfterDelivery, delivery.Card)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewScheduleDeliveryCommand_MissingDate(t *testing.T) {
	_, err := commands.NewScheduleDeliveryCommand(
		42, time.Time{}, 3, delivery.AfterDelivery, delivery.Card)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewScheduleDeliveryCommand_MissingCarrier(t *testing.T) {
	_, err := commands.NewScheduleDeliveryCommand(
		42, testDate(), 0, delivery.AfterDelivery, delivery.Card)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewScheduleDeliveryCommand_UnknownPayment(t *testing.T) {
	_, err := commands.NewScheduleDeliveryCommand(
		42, testDate(), 3, delivery.TimingUnknown, delivery.Card)
	require.Error(t, err)
}

func TestScheduleDeliveryCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ScheduleDeliveryCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrScheduleDeliveryCommandIsNotConstructed)
}
