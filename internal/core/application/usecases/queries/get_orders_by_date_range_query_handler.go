package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersByDateRangeQueryHandler retrieves order summaries created
// within a time interval.
type GetOrdersByDateRangeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDateRangeQueryHandler creates a handler for date-filtered
// order queries.
func NewGetOrdersByDateRangeQueryHandler(db *gorm.DB) GetOrdersByDateRangeQueryHandler {
	return GetOrdersByDateRangeQueryHandler{db: db}
}

// Handle executes the query. Both bounds are inclusive; an empty slice is
// returned when no order was created inside the range.
func (h GetOrdersByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDateRangeQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_nom,
			statut,
			adresse,
			telephone,
			livreur_id
		FROM commandes
		WHERE created_at BETWEEN ? AND ?
		ORDER BY id
	`, query.Start(), query.End()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
