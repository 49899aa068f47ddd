package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.PendingPayment))
		assert.Equal(t, 3, int(order.Paid))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.PendingPayment,
			order.Paid,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out-of-range status", func(t *testing.T) {
		err := order.Status(42).Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representations", func(t *testing.T) {
		assert.Equal(t, "PENDING", order.Pending.String())
		assert.Equal(t, "PENDING_PAYMENT", order.PendingPayment.String())
		assert.Equal(t, "PAID", order.Paid.String())
		assert.Equal(t, "DELIVERED", order.Delivered.String())
		assert.Equal(t, "CANCELLED", order.Cancelled.String())
	})

	t.Run("should return UNKNOWN for invalid values", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.Unknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid representations", func(t *testing.T) {
		cases := map[string]order.Status{
			"PENDING":         order.Pending,
			"PENDING_PAYMENT": order.PendingPayment,
			"PAID":            order.Paid,
			"DELIVERED":       order.Delivered,
			"CANCELLED":       order.Cancelled,
		}

		for text, want := range cases {
			got, err := order.StatusFromString(text)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown representations", func(t *testing.T) {
		for _, text := range []string{"", "pending", "SHIPPED", "UNKNOWN"} {
			_, err := order.StatusFromString(text)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Checkout(t *testing.T) {
	t.Run("should transition Pending to Paid", func(t *testing.T) {
		newStatus, err := order.Pending.Checkout()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})

	t.Run("should transition PendingPayment to Paid", func(t *testing.T) {
		newStatus, err := order.PendingPayment.Checkout()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})

	t.Run("should reject checkout from ineligible statuses", func(t *testing.T) {
		ineligible := []order.Status{
			order.Unknown,
			order.Paid,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range ineligible {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Checkout()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
				assert.Equal(t, order.Unknown, newStatus)
			})
		}
	})
}

func TestStatus_IsPendingLike(t *testing.T) {
	assert.True(t, order.Pending.IsPendingLike())
	assert.True(t, order.PendingPayment.IsPendingLike())
	assert.False(t, order.Paid.IsPendingLike())
	assert.False(t, order.Delivered.IsPendingLike())
	assert.False(t, order.Cancelled.IsPendingLike())
	assert.False(t, order.Unknown.IsPendingLike())
}

func TestPendingStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]order.Status{order.Pending, order.PendingPayment},
		order.PendingStatuses(),
	)
}
