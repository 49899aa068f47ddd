package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPendingOrdersByUserQueryHandler retrieves a user's orders that have
// not been paid yet.
type GetPendingOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersByUserQueryHandler creates a handler for per-user
// pending order queries.
func NewGetPendingOrdersByUserQueryHandler(db *gorm.DB) GetPendingOrdersByUserQueryHandler {
	return GetPendingOrdersByUserQueryHandler{db: db}
}

// Handle executes the query. Matches PENDING and PENDING_PAYMENT orders
// only; a user without unpaid orders gets an empty slice.
func (h GetPendingOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersByUserQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]string, 0, 2)
	for _, status := range order.PendingStatuses() {
		pending = append(pending, status.String())
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
		WHERE user_id = ? AND statut IN ?
		ORDER BY id
	`, query.UserID(), pending).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
