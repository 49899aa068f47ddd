package queries

import (
	"context"
	"database/sql"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// default status text for rows persisted without one
const defaultStatusText = "PENDING"

// GetOrdersQueryHandler retrieves order summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all order summaries.
// Results are sorted by order ID for consistent output. A storage read
// failure surfaces as StorageUnavailableError, never a partial response.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
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
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// scanOrderSummaries converts summary projection rows into read models.
// Shared by every query that selects the summary column set.
func scanOrderSummaries(rows *sql.Rows) ([]OrderSummaryResponse, error) {
	orders := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var summary OrderSummaryResponse
		var status sql.NullString
		var courierID sql.NullInt64

		err := rows.Scan(
			&summary.ID,
			&summary.ClientName,
			&status,
			&summary.Address,
			&summary.Phone,
			&courierID,
		)
		if err != nil {
			return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
		}

		summary.Status = defaultStatusText
		if status.Valid && status.String != "" {
			summary.Status = status.String
		}

		if courierID.Valid {
			summary.CourierID = &courierID.Int64
		}

		orders = append(orders, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}

	return orders, nil
}
