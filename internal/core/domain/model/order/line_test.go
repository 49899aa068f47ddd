package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	t.Run("should create line with valid inputs", func(t *testing.T) {
		line, err := order.NewLine(7, 2, 5.0)

		require.NoError(t, err)
		assert.Equal(t, int64(7), line.ProductID())
		assert.Equal(t, 2, line.Quantity())
		assert.InDelta(t, 5.0, line.UnitPrice(), 0.0001)
		assert.False(t, line.NeedsPricing())
	})

	t.Run("should reject missing product reference", func(t *testing.T) {
		for _, productID := range []int64{0, -1} {
			line, err := order.NewLine(productID, 1, 5.0)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Nil(t, line)
		}
	})

	t.Run("should default non-positive quantity to 1", func(t *testing.T) {
		for _, quantity := range []int{0, -3} {
			line, err := order.NewLine(7, quantity, 5.0)

			require.NoError(t, err)
			assert.Equal(t, 1, line.Quantity())
		}
	})

	t.Run("should accept non-positive unit price as unpriced", func(t *testing.T) {
		line, err := order.NewLine(7, 1, 0)

		require.NoError(t, err)
		assert.True(t, line.NeedsPricing())
	})
}

func TestRestoreLine(t *testing.T) {
	t.Run("should restore persisted identity", func(t *testing.T) {
		line, err := order.RestoreLine(12, 7, 2, 5.0)

		require.NoError(t, err)
		assert.Equal(t, int64(12), line.ID())
	})
}

func TestLine_Validate(t *testing.T) {
	t.Run("constructed line passes validation", func(t *testing.T) {
		line, err := order.NewLine(7, 1, 5.0)
		require.NoError(t, err)
		require.NoError(t, line.Validate())
	})

	t.Run("zero-value line fails validation", func(t *testing.T) {
		var line order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})

	t.Run("nil line fails validation", func(t *testing.T) {
		var line *order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestLine_SetUnitPrice(t *testing.T) {
	t.Run("should resolve unpriced line", func(t *testing.T) {
		line, err := order.NewLine(7, 2, 0)
		require.NoError(t, err)

		require.NoError(t, line.SetUnitPrice(5.0))
		assert.InDelta(t, 5.0, line.UnitPrice(), 0.0001)
		assert.False(t, line.NeedsPricing())
	})

	t.Run("should reject non-positive resolved price", func(t *testing.T) {
		line, err := order.NewLine(7, 2, 0)
		require.NoError(t, err)

		err = line.SetUnitPrice(0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLine_Total(t *testing.T) {
	line, err := order.NewLine(7, 3, 2.5)
	require.NoError(t, err)

	assert.InDelta(t, 7.5, line.Total(), 0.0001)
}
