package commands_test

import (
	"testing"
	"time"

	"pharmorders/internal/core/application/usecases/commands"
	"pharmorders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduleDeliveryCommand(t *testing.T) {
	t.Run("should create command with valid params", func(t *testing.T) {
		orderID := kernel.NewUUID()
		date := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

		cmd, err := commands.NewScheduleDeliveryCommand(orderID, date)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, date, cmd.Date())
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		_, err := commands.NewScheduleDeliveryCommand(kernel.NewUUID(), time.Time{})

		require.ErrorIs(t, err, commands.ErrDeliveryDateIsRequired)
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		_, err := commands.NewScheduleDeliveryCommand(kernel.UUID{}, time.Now())

		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		cmd := commands.ScheduleDeliveryCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrScheduleDeliveryCommandIsNotConstructed)
	})
}
