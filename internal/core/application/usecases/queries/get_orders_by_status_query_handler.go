package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler retrieves order summaries in one status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered
// order queries.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Returns an empty slice when no order carries
// the requested status.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
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
		WHERE statut = ?
		ORDER BY id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
