package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// CompanyModel is the GORM model for the companies table
type CompanyModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(200);not null"`
	TaxID       string    `gorm:"column:tax_id;type:varchar(20);not null;uniqueIndex"`
	IsPrincipal bool      `gorm:"column:is_principal;default:false"`
	Active      bool      `gorm:"column:active;default:true;index"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
