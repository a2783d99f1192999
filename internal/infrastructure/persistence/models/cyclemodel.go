package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// CycleModel is the GORM model for the cycles table. The unique index on
// (contract_id, letter, start_date) is the natural key the bulk import
// deduplicates against.
type CycleModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ContractID uint      `gorm:"column:contract_id;not null;uniqueIndex:idx_cycles_natural_key"`
	Letter     string    `gorm:"column:letter;type:varchar(1);not null;uniqueIndex:idx_cycles_natural_key"`
	StartDate  time.Time `gorm:"column:start_date;not null;uniqueIndex:idx_cycles_natural_key"`
	EndDate    time.Time `gorm:"column:end_date;not null;index"`
	State      string    `gorm:"column:state;type:varchar(20);not null;default:'NO_DEFINIDO'"`
	Shift      string    `gorm:"column:shift;type:varchar(10);not null;default:'DIA'"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (CycleModel) TableName() string {
	return constants.TableCycles
}
