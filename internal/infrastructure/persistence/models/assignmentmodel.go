package models

import (
	"time"

	"github.com/faena-hq/faena/internal/shared/constants"
)

// AssignmentModel is the GORM model for the assignments table. The unique
// index on (cycle_id, worker_id) arbitrates racing writers; duplicate key
// errors surface through errors.IsDuplicateError.
type AssignmentModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	CycleID    uint      `gorm:"column:cycle_id;not null;uniqueIndex:idx_assignments_cycle_worker"`
	WorkerID   uint      `gorm:"column:worker_id;not null;uniqueIndex:idx_assignments_cycle_worker"`
	AssignedAt time.Time `gorm:"column:assigned_at;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (AssignmentModel) TableName() string {
	return constants.TableAssignments
}
