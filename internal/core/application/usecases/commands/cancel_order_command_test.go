package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand(mustID(t, "abc123"), "Changed my mind")

		require.NoError(t, err)
		assert.Equal(t, "abc123", cmd.OrderID().String())
		assert.Equal(t, "Changed my mind", cmd.Reason())
		require.NoError(t, cmd.Validate())
	})

	t.Run("empty reason is allowed", func(t *testing.T) {
		cmd, err := commands.NewCancelOrderCommand(mustID(t, "abc123"), "")

		require.NoError(t, err)
		assert.Empty(t, cmd.Reason())
	})

	t.Run("invalid order id is rejected", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.ID{}, "reason")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
