package roster

import (
	"fmt"
	"time"
)

// Requirement is the required headcount of one job title for one cycle.
// Unique per (cycle, job title); the storage layer enforces the constraint.
type Requirement struct {
	id            uint
	cycleID       uint
	jobTitleID    uint
	requiredCount int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewRequirement(cycleID, jobTitleID uint, requiredCount int) (*Requirement, error) {
	if cycleID == 0 {
		return nil, fmt.Errorf("cycle ID is required")
	}
	if jobTitleID == 0 {
		return nil, fmt.Errorf("job title ID is required")
	}
	if requiredCount < 1 {
		return nil, fmt.Errorf("required count must be at least 1")
	}

	now := time.Now()
	return &Requirement{
		cycleID:       cycleID,
		jobTitleID:    jobTitleID,
		requiredCount: requiredCount,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructRequirement(id, cycleID, jobTitleID uint, requiredCount int,
	createdAt, updatedAt time.Time) (*Requirement, error) {

	if id == 0 {
		return nil, fmt.Errorf("requirement ID cannot be zero")
	}

	return &Requirement{
		id:            id,
		cycleID:       cycleID,
		jobTitleID:    jobTitleID,
		requiredCount: requiredCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r *Requirement) ID() uint {
	return r.id
}

func (r *Requirement) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("requirement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("requirement ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Requirement) CycleID() uint {
	return r.cycleID
}

func (r *Requirement) JobTitleID() uint {
	return r.jobTitleID
}

func (r *Requirement) RequiredCount() int {
	return r.requiredCount
}

// SetRequiredCount overwrites the headcount; used by the idempotent upsert.
func (r *Requirement) SetRequiredCount(count int) error {
	if count < 1 {
		return fmt.Errorf("required count must be at least 1")
	}
	r.requiredCount = count
	r.updatedAt = time.Now()
	return nil
}

func (r *Requirement) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Requirement) UpdatedAt() time.Time {
	return r.updatedAt
}
