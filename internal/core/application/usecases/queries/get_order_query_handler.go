package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its lines and the
// assigned courier summary.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for one order. The courier is joined
// optionally: orders without an assignment come back with a nil Courier.
// Returns ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.reference,
			c.client_nom,
			c.statut,
			c.adresse,
			c.telephone,
			c.gouvernement,
			c.user_id,
			c.created_at,
			l.id,
			l.nom,
			l.telephone
		FROM commandes c
		LEFT JOIN livreurs l ON l.id = c.livreur_id
		WHERE c.id = ?
	`, query.OrderID()).Row()

	var resp OrderDetailResponse
	var status sql.NullString
	var createdAt time.Time
	var courierID sql.NullInt64
	var courierName, courierPhone sql.NullString

	err := row.Scan(
		&resp.ID,
		&resp.Reference,
		&resp.ClientName,
		&status,
		&resp.Address,
		&resp.Phone,
		&resp.Governorate,
		&resp.UserID,
		&createdAt,
		&courierID,
		&courierName,
		&courierPhone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailResponse{}, errs.NewObjectNotFoundError("commande", query.OrderID())
		}
		return OrderDetailResponse{}, errs.NewStorageUnavailableErrorWithCause("commandes", err)
	}

	resp.Status = defaultStatusText
	if status.Valid && status.String != "" {
		resp.Status = status.String
	}
	resp.CreatedAt = createdAt

	if courierID.Valid {
		resp.Courier = &CourierSummaryResponse{
			ID:    courierID.Int64,
			Name:  courierName.String,
			Phone: courierPhone.String,
		}
	}

	lines, err := h.loadLines(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID int64) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			produit_id,
			qte,
			prix_unitaire
		FROM lignes_commande
		WHERE commande_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("lignes_commande", err)
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var line OrderLineResponse
		if err = rows.Scan(&line.ID, &line.ProductID, &line.Quantity, &line.UnitPrice); err != nil {
			return nil, errs.NewStorageUnavailableErrorWithCause("lignes_commande", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableErrorWithCause("lignes_commande", err)
	}

	return lines, nil
}
