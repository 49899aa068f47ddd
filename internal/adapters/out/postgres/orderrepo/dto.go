// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and the commandes /
// lignes_commande tables.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Column names follow the legacy French schema; the status is stored as its
// wire text and the courier reference is nullable.
type OrderDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Reference   string    `gorm:"uniqueIndex"`
	ClientName  string    `gorm:"column:client_nom"`
	Status      string    `gorm:"column:statut;index"`
	Address     string    `gorm:"column:adresse"`
	Phone       string    `gorm:"column:telephone"`
	Governorate string    `gorm:"column:gouvernement"`
	UserID      int64     `gorm:"column:user_id;index"`
	CourierID   *int64    `gorm:"column:livreur_id;index"`
	Lines       []LineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "commandes"
}

// LineDTO represents one order line row. Lines live and die with their
// parent order through the cascade constraint.
type LineDTO struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	OrderID   int64   `gorm:"column:commande_id;index"`
	ProductID int64   `gorm:"column:produit_id"`
	Quantity  int     `gorm:"column:qte"`
	UnitPrice float64 `gorm:"column:prix_unitaire"`
}

// TableName specifies the database table name for order line entities.
func (LineDTO) TableName() string {
	return "lignes_commande"
}

// fromDomain converts an order aggregate to its database representation,
// lines included.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, LineDTO{
			ID:        line.ID(),
			OrderID:   aggregate.ID(),
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID(),
		Reference:   aggregate.Reference(),
		ClientName:  aggregate.ClientName(),
		Status:      aggregate.Status().String(),
		Address:     aggregate.Address(),
		Phone:       aggregate.Phone(),
		Governorate: aggregate.Governorate(),
		UserID:      aggregate.UserID(),
		CourierID:   aggregate.CourierID(),
		Lines:       lines,
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
// Legacy rows persisted without a status come back as Pending.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status := order.Pending
	if dto.Status != "" {
		parsed, err := order.StatusFromString(dto.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, err := order.RestoreLine(lineDTO.ID, lineDTO.ProductID, lineDTO.Quantity, lineDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Reference,
		dto.ClientName,
		status,
		dto.Address,
		dto.Phone,
		dto.Governorate,
		dto.UserID,
		dto.CourierID,
		lines,
		dto.CreatedAt,
	)
}
