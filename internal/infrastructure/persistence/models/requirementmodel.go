package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// RequirementModel is the GORM model for the requirements table
type RequirementModel struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	CycleID       uint      `gorm:"column:cycle_id;not null;uniqueIndex:idx_requirements_cycle_title"`
	JobTitleID    uint      `gorm:"column:job_title_id;not null;uniqueIndex:idx_requirements_cycle_title"`
	RequiredCount int       `gorm:"column:required_count;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (RequirementModel) TableName() string {
	return constants.TableRequirements
}
