package roster

import (
	"context"
	"time"
)

type CycleRepository interface {
	Create(ctx context.Context, cycle *Cycle) error
	GetByID(ctx context.Context, id uint) (*Cycle, error)
	// GetByNaturalKey resolves a cycle by its import identity:
	// contract, rotation letter and start date.
	GetByNaturalKey(ctx context.Context, contractID uint, letter string, startDate time.Time) (*Cycle, error)
	ListByContract(ctx context.Context, contractID uint) ([]*Cycle, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Cycle, error)
	// FindActiveByContract returns the cycles whose date range contains
	// the given date.
	FindActiveByContract(ctx context.Context, contractID uint, date time.Time) ([]*Cycle, error)
	Update(ctx context.Context, cycle *Cycle) error
}

type RequirementRepository interface {
	Create(ctx context.Context, requirement *Requirement) error
	GetByCycleAndJobTitle(ctx context.Context, cycleID, jobTitleID uint) (*Requirement, error)
	ListByCycle(ctx context.Context, cycleID uint) ([]*Requirement, error)
	Update(ctx context.Context, requirement *Requirement) error
	Delete(ctx context.Context, id uint) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *Assignment) error
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	GetByCycleAndWorker(ctx context.Context, cycleID, workerID uint) (*Assignment, error)
	ListByCycle(ctx context.Context, cycleID uint) ([]*Assignment, error)
	CountByCycle(ctx context.Context, cycleID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}
