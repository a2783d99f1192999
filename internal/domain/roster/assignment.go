package roster

import (
	"fmt"
	"time"
)

// Assignment links one worker to one cycle. Unique per (cycle, worker);
// the storage layer enforces the constraint so two concurrent assigns of
// the same pair cannot both land.
type Assignment struct {
	id         uint
	cycleID    uint
	workerID   uint
	assignedAt time.Time
	createdAt  time.Time
}

func NewAssignment(cycleID, workerID uint) (*Assignment, error) {
	if cycleID == 0 {
		return nil, fmt.Errorf("cycle ID is required")
	}
	if workerID == 0 {
		return nil, fmt.Errorf("worker ID is required")
	}

	now := time.Now()
	return &Assignment{
		cycleID:    cycleID,
		workerID:   workerID,
		assignedAt: now,
		createdAt:  now,
	}, nil
}

func ReconstructAssignment(id, cycleID, workerID uint, assignedAt, createdAt time.Time) (*Assignment, error) {
	if id == 0 {
		return nil, fmt.Errorf("assignment ID cannot be zero")
	}

	return &Assignment{
		id:         id,
		cycleID:    cycleID,
		workerID:   workerID,
		assignedAt: assignedAt,
		createdAt:  createdAt,
	}, nil
}

func (a *Assignment) ID() uint {
	return a.id
}

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("assignment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("assignment ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Assignment) CycleID() uint {
	return a.cycleID
}

func (a *Assignment) WorkerID() uint {
	return a.workerID
}

func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

func (a *Assignment) CreatedAt() time.Time {
	return a.createdAt
}
