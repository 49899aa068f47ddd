package queries_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByDateRangeQuery_ValidInput(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	query, err := queries.NewGetOrdersByDateRangeQuery(start, end)

	require.NoError(t, err)
	assert.Equal(t, start, query.Start())
	assert.Equal(t, end, query.End())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersByDateRangeQuery_SingleInstantRange(t *testing.T) {
	instant := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	_, err := queries.NewGetOrdersByDateRangeQuery(instant, instant)

	require.NoError(t, err)
}

func TestNewGetOrdersByDateRangeQuery_ZeroBounds(t *testing.T) {
	instant := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

	_, err := queries.NewGetOrdersByDateRangeQuery(time.Time{}, instant)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetOrdersByDateRangeQuery(instant, time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewGetOrdersByDateRangeQuery_EndBeforeStart(t *testing.T) {
	start := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := queries.NewGetOrdersByDateRangeQuery(start, end)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetOrdersByDateRangeQuery_ZeroValueFailsValidation(t *testing.T) {
	query := queries.GetOrdersByDateRangeQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByDateRangeQueryIsNotConstructed)
}
