package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// ProjectModel is the GORM model for the projects table
type ProjectModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"column:name;type:varchar(200);not null;uniqueIndex"`
	Description string     `gorm:"column:description;type:text"`
	Active      bool       `gorm:"column:active;default:true;index"`
	StartDate   time.Time  `gorm:"column:start_date;not null"`
	EndDate     *time.Time `gorm:"column:end_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return constants.TableProjects
}
