package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// WorkerModel is the GORM model for the workers table
type WorkerModel struct {
	ID         uint       `gorm:"primaryKey;autoIncrement"`
	NationalID string     `gorm:"column:national_id;type:varchar(20);not null;uniqueIndex"`
	FirstNames string     `gorm:"column:first_names;type:varchar(150);not null"`
	LastNames  string     `gorm:"column:last_names;type:varchar(150);not null"`
	Email      string     `gorm:"column:email;type:varchar(255)"`
	Phone      string     `gorm:"column:phone;type:varchar(30)"`
	CompanyID  uint       `gorm:"column:company_id;not null;index"`
	ProjectID  *uint      `gorm:"column:project_id;index"`
	JobTitleID *uint      `gorm:"column:job_title_id;index"`
	Active     bool       `gorm:"column:active;default:true;index"`
	HiredAt    *time.Time `gorm:"column:hired_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (WorkerModel) TableName() string {
	return constants.TableWorkers
}
