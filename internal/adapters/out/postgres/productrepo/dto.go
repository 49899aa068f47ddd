// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence against the produits table.
package productrepo

import (
	"ordering/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID    int64   `gorm:"primaryKey;autoIncrement"`
	Label string  `gorm:"column:libelle"`
	Price float64 `gorm:"column:prix"`
	Stock int     `gorm:"column:stock"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "produits"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:    aggregate.ID(),
		Label: aggregate.Label(),
		Price: aggregate.Price(),
		Stock: aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a product aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Label, dto.Price, dto.Stock)
}
