package product_test

import (
	"testing"

	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create product with valid inputs", func(t *testing.T) {
		p, err := product.NewProduct("Huile d'olive 1L", 12.5, 40)

		require.NoError(t, err)
		assert.Equal(t, "Huile d'olive 1L", p.Label())
		assert.InDelta(t, 12.5, p.Price(), 0.0001)
		assert.Equal(t, 40, p.Stock())
	})

	t.Run("should trim the label", func(t *testing.T) {
		p, err := product.NewProduct("  Dattes  ", 8.0, 0)

		require.NoError(t, err)
		assert.Equal(t, "Dattes", p.Label())
	})

	t.Run("should reject blank label", func(t *testing.T) {
		p, err := product.NewProduct("   ", 8.0, 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		for _, price := range []float64{0, -1} {
			p, err := product.NewProduct("Dattes", price, 1)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, p)
		}
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		p, err := product.NewProduct("Dattes", 8.0, -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, p)
	})
}

func TestRestoreProduct(t *testing.T) {
	p, err := product.RestoreProduct(7, "Dattes", 8.0, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID())
}

func TestProduct_Validate(t *testing.T) {
	t.Run("constructed product passes validation", func(t *testing.T) {
		p, err := product.NewProduct("Dattes", 8.0, 3)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
	})

	t.Run("zero-value product fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
