package roster

import (
	"fmt"
	"time"
)

// CycleState tracks whether a cycle's staffing requirements are met.
// NO_DEFINIDO: no requirements recorded yet. INCOMPLETO: at least one
// requirement unmet. COMPLETO: every requirement met.
type CycleState string

const (
	StateUndefined  CycleState = "NO_DEFINIDO"
	StateIncomplete CycleState = "INCOMPLETO"
	StateComplete   CycleState = "COMPLETO"
)

func (s CycleState) IsValid() bool {
	switch s {
	case StateUndefined, StateIncomplete, StateComplete:
		return true
	}
	return false
}

// ShiftSchedule tags whether a cycle works days or nights.
type ShiftSchedule string

const (
	ShiftDay   ShiftSchedule = "DIA"
	ShiftNight ShiftSchedule = "NOCHE"
)

func (s ShiftSchedule) IsValid() bool {
	return s == ShiftDay || s == ShiftNight
}

var validLetters = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// Cycle is one bounded-date rotation instance (e.g. "rotation A,
// Jan 1 to Jan 7") under a contract. Its state is recomputed from the
// requirement and assignment rows after every mutation, never set by hand.
type Cycle struct {
	id         uint
	contractID uint
	letter     string
	startDate  time.Time
	endDate    time.Time
	state      CycleState
	shift      ShiftSchedule
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCycle(contractID uint, letter string, startDate, endDate time.Time, shift ShiftSchedule) (*Cycle, error) {
	if contractID == 0 {
		return nil, fmt.Errorf("contract ID is required")
	}
	if !validLetters[letter] {
		return nil, fmt.Errorf("invalid rotation letter: %s", letter)
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("cycle date range is required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("cycle end date cannot be before start date")
	}
	if shift == "" {
		shift = ShiftDay
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift schedule: %s", shift)
	}

	now := time.Now()
	return &Cycle{
		contractID: contractID,
		letter:     letter,
		startDate:  startDate,
		endDate:    endDate,
		state:      StateUndefined,
		shift:      shift,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// CycleReconstructParams carries stored cycle state back into the domain.
type CycleReconstructParams struct {
	ID         uint
	ContractID uint
	Letter     string
	StartDate  time.Time
	EndDate    time.Time
	State      string
	Shift      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructCycle(params CycleReconstructParams) (*Cycle, error) {
	if params.ID == 0 {
		return nil, fmt.Errorf("cycle ID cannot be zero")
	}

	state := CycleState(params.State)
	if state == "" {
		state = StateUndefined
	}
	if !state.IsValid() {
		return nil, fmt.Errorf("invalid cycle state: %s", params.State)
	}

	shift := ShiftSchedule(params.Shift)
	if shift == "" {
		shift = ShiftDay
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift schedule: %s", params.Shift)
	}

	return &Cycle{
		id:         params.ID,
		contractID: params.ContractID,
		letter:     params.Letter,
		startDate:  params.StartDate,
		endDate:    params.EndDate,
		state:      state,
		shift:      shift,
		createdAt:  params.CreatedAt,
		updatedAt:  params.UpdatedAt,
	}, nil
}

func (c *Cycle) ID() uint {
	return c.id
}

func (c *Cycle) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("cycle ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("cycle ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Cycle) ContractID() uint {
	return c.contractID
}

func (c *Cycle) Letter() string {
	return c.letter
}

func (c *Cycle) StartDate() time.Time {
	return c.startDate
}

func (c *Cycle) EndDate() time.Time {
	return c.endDate
}

func (c *Cycle) State() CycleState {
	return c.state
}

func (c *Cycle) Shift() ShiftSchedule {
	return c.shift
}

func (c *Cycle) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Cycle) UpdatedAt() time.Time {
	return c.updatedAt
}

// ContainsDate reports whether the given date falls inside the cycle's
// inclusive date range.
func (c *Cycle) ContainsDate(date time.Time) bool {
	return !date.Before(c.startDate) && !date.After(c.endDate)
}

// ApplyState records the recomputed staffing state. Transitions are derived
// from requirement and assignment rows, so any valid state is accepted.
func (c *Cycle) ApplyState(state CycleState) error {
	if !state.IsValid() {
		return fmt.Errorf("invalid cycle state: %s", state)
	}
	c.state = state
	c.updatedAt = time.Now()
	return nil
}
