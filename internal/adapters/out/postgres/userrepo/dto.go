// Package userrepo provides data transfer objects and mapping functions for
// user account persistence against the users table.
package userrepo

import (
	"time"

	"ordering/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
// It carries the full legacy column set, including the face-recognition
// descriptor and the activity counters.
type UserDTO struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	LastName         string     `gorm:"column:nom"`
	FirstName        string     `gorm:"column:prenom"`
	Email            string     `gorm:"column:email;uniqueIndex"`
	Password         string     `gorm:"column:password"`
	Phone            string     `gorm:"column:telephone"`
	Role             string     `gorm:"column:role"`
	Address          string     `gorm:"column:adresse"`
	FaceDescriptor   string     `gorm:"column:face_descriptor"`
	Photo            string     `gorm:"column:photo"`
	Blocked          bool       `gorm:"column:blocked"`
	Verified         bool       `gorm:"column:verified"`
	VerificationCode string     `gorm:"column:verification_code"`
	ResetCode        string     `gorm:"column:reset_code"`
	LastConnection   *time.Time `gorm:"column:last_connection"`
	ConnectionCount  int        `gorm:"column:connection_count"`
	ActionCount      int        `gorm:"column:action_count"`
	BlockCount       int        `gorm:"column:block_count"`
	DateOfBirth      *time.Time `gorm:"column:date_naissance"`
	CreditLimit      *float64   `gorm:"column:credit_limit"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:               aggregate.ID(),
		LastName:         aggregate.LastName(),
		FirstName:        aggregate.FirstName(),
		Email:            aggregate.Email(),
		Password:         aggregate.Password(),
		Phone:            aggregate.Phone(),
		Role:             aggregate.Role(),
		Address:          aggregate.Address(),
		FaceDescriptor:   aggregate.FaceDescriptor(),
		Photo:            aggregate.Photo(),
		Blocked:          aggregate.IsBlocked(),
		Verified:         aggregate.IsVerified(),
		VerificationCode: aggregate.VerificationCode(),
		ResetCode:        aggregate.ResetCode(),
		LastConnection:   aggregate.LastConnection(),
		ConnectionCount:  aggregate.ConnectionCount(),
		ActionCount:      aggregate.ActionCount(),
		BlockCount:       aggregate.BlockCount(),
		DateOfBirth:      aggregate.DateOfBirth(),
		CreditLimit:      aggregate.CreditLimit(),
	}
}

// toDomain converts a database DTO to a user aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		dto.ID,
		dto.LastName,
		dto.FirstName,
		dto.Email,
		dto.Password,
		dto.Phone,
		dto.Role,
		dto.Address,
		dto.FaceDescriptor,
		dto.Photo,
		dto.Blocked,
		dto.Verified,
		dto.VerificationCode,
		dto.ResetCode,
		dto.LastConnection,
		dto.ConnectionCount,
		dto.ActionCount,
		dto.BlockCount,
		dto.DateOfBirth,
		dto.CreditLimit,
	)
}
