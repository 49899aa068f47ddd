// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence against the livreurs table.
package courierrepo

import (
	"ordering/internal/core/domain/model/courier"
)

// CourierDTO represents the database structure for persisting couriers.
// The user reference is nullable: a courier may exist without an account.
type CourierDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"column:nom"`
	Email  string `gorm:"column:email"`
	Phone  string `gorm:"column:telephone"`
	UserID *int64 `gorm:"column:user_id;index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "livreurs"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aggregate.ID(),
		Name:   aggregate.Name(),
		Email:  aggregate.Email(),
		Phone:  aggregate.Phone(),
		UserID: aggregate.UserID(),
	}
}

// toDomain converts a database DTO to a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(dto.ID, dto.Name, dto.Email, dto.Phone, dto.UserID)
}
