package commands_test

import (
	"testing"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand([]int{1, 2}, "Alice")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, []int{1, 2}, cmd.ItemIDs())
		assert.Equal(t, "Alice", cmd.CustomerName())
	})

	t.Run("should allow empty customer name", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand([]int{1}, "")

		require.NoError(t, err)
		assert.Empty(t, cmd.CustomerName())
	})

	t.Run("should reject empty item sequence", func(t *testing.T) {
		for _, itemIDs := range [][]int{nil, {}} {
			_, err := commands.NewPlaceOrderCommand(itemIDs, "Alice")

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), "items")
		}
	})

	t.Run("should copy the item id slice", func(t *testing.T) {
		itemIDs := []int{1, 2}
		cmd, err := commands.NewPlaceOrderCommand(itemIDs, "Alice")
		require.NoError(t, err)

		itemIDs[0] = 99

		assert.Equal(t, []int{1, 2}, cmd.ItemIDs())
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
	})
}
