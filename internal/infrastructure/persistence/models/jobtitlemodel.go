package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// JobTitleModel is the GORM model for the job_titles table
type JobTitleModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(200);not null;uniqueIndex:idx_job_titles_scope"`
	ProjectID uint      `gorm:"column:project_id;not null;uniqueIndex:idx_job_titles_scope"`
	CompanyID uint      `gorm:"column:company_id;not null;uniqueIndex:idx_job_titles_scope"`
	ParentID  *uint     `gorm:"column:parent_id;index"`
	Level     string    `gorm:"column:level;type:varchar(30);not null;default:'OPERATIONAL'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (JobTitleModel) TableName() string {
	return constants.TableJobTitles
}
