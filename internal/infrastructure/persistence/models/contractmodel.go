package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// ContractModel is the GORM model for the contracts table
type ContractModel struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	ProjectID     uint       `gorm:"column:project_id;not null;index:idx_contracts_project_company"`
	ServiceTypeID uint       `gorm:"column:service_type_id;not null"`
	CompanyID     uint       `gorm:"column:company_id;not null;index:idx_contracts_project_company"`
	ShiftPattern  string     `gorm:"column:shift_pattern;type:varchar(10);not null;default:'ABCD'"`
	RotationTag   string     `gorm:"column:rotation_tag;type:varchar(20);not null;default:'7x7'"`
	Active        bool       `gorm:"column:active;default:true;index"`
	StartDate     *time.Time `gorm:"column:start_date"`
	EndDate       *time.Time `gorm:"column:end_date"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return constants.TableContracts
}
