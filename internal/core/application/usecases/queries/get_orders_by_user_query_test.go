package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersByUserQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetOrdersByUserQuery(7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), query.UserID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrdersByUserQuery_MissingUserID(t *testing.T) {
	_, err := queries.NewGetOrdersByUserQuery(0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrdersByUserQuery_ZeroValueFailsValidation(t *testing.T) {
	query := queries.GetOrdersByUserQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetOrdersByUserQueryIsNotConstructed)
}

func TestNewGetPendingOrdersByUserQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetPendingOrdersByUserQuery(7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), query.UserID())
	assert.NoError(t, query.Validate())
}

func TestNewGetPendingOrdersByUserQuery_MissingUserID(t *testing.T) {
	_, err := queries.NewGetPendingOrdersByUserQuery(-3)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetPendingOrdersByUserQuery_ZeroValueFailsValidation(t *testing.T) {
	query := queries.GetPendingOrdersByUserQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetPendingOrdersByUserQueryIsNotConstructed)
}
