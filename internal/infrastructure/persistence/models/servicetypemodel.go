package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// ServiceTypeModel is the GORM model for the service_types table
type ServiceTypeModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"column:description;type:text"`
	Active      bool      `gorm:"column:active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (ServiceTypeModel) TableName() string {
	return constants.TableServiceTypes
}
