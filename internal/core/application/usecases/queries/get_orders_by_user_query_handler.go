package queries

import (
	"context"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersByUserQueryHandler retrieves all order summaries owned by a user.
type GetOrdersByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByUserQueryHandler creates a handler for per-user order queries.
func NewGetOrdersByUserQueryHandler(db *gorm.DB) GetOrdersByUserQueryHandler {
	return GetOrdersByUserQueryHandler{db: db}
}

// Handle executes the query. A user without orders gets an empty slice,
// not an error; user existence is not checked here.
func (h GetOrdersByUserQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByUserQuery,
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
		WHERE user_id = ?
		ORDER BY id
	`, query.UserID()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}
