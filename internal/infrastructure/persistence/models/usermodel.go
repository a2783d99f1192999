package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// UserModel is the GORM model for the users table
type UserModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	FullName     string    `gorm:"column:full_name;type:varchar(200)"`
	Role         string    `gorm:"column:role;type:varchar(30);not null;default:'VIEWER'"`
	Active       bool      `gorm:"column:active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
