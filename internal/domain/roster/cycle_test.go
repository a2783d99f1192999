package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewCycle(t *testing.T) {
	tests := []struct {
		name       string
		contractID uint
		letter     string
		start      time.Time
		end        time.Time
		shift      ShiftSchedule
		wantErr    bool
	}{
		{
			name:       "valid day cycle",
			contractID: 1,
			letter:     "A",
			start:      date(2026, 1, 1),
			end:        date(2026, 1, 7),
			shift:      ShiftDay,
		},
		{
			name:       "defaults to day shift when empty",
			contractID: 1,
			letter:     "B",
			start:      date(2026, 1, 8),
			end:        date(2026, 1, 14),
			shift:      "",
		},
		{
			name:       "single day range is valid",
			contractID: 1,
			letter:     "C",
			start:      date(2026, 1, 1),
			end:        date(2026, 1, 1),
			shift:      ShiftNight,
		},
		{
			name:       "missing contract",
			contractID: 0,
			letter:     "A",
			start:      date(2026, 1, 1),
			end:        date(2026, 1, 7),
			wantErr:    true,
		},
		{
			name:       "invalid rotation letter",
			contractID: 1,
			letter:     "E",
			start:      date(2026, 1, 1),
			end:        date(2026, 1, 7),
			wantErr:    true,
		},
		{
			name:       "end before start",
			contractID: 1,
			letter:     "A",
			start:      date(2026, 1, 7),
			end:        date(2026, 1, 1),
			wantErr:    true,
		},
		{
			name:       "invalid shift",
			contractID: 1,
			letter:     "A",
			start:      date(2026, 1, 1),
			end:        date(2026, 1, 7),
			shift:      "AFTERNOON",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle, err := NewCycle(tt.contractID, tt.letter, tt.start, tt.end, tt.shift)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StateUndefined, cycle.State())
			assert.Equal(t, tt.letter, cycle.Letter())
			if tt.shift == "" {
				assert.Equal(t, ShiftDay, cycle.Shift())
			}
		})
	}
}

func TestCycleContainsDate(t *testing.T) {
	cycle, err := NewCycle(1, "A", date(2026, 1, 1), date(2026, 1, 7), ShiftDay)
	require.NoError(t, err)

	assert.True(t, cycle.ContainsDate(date(2026, 1, 1)), "start date is inclusive")
	assert.True(t, cycle.ContainsDate(date(2026, 1, 4)))
	assert.True(t, cycle.ContainsDate(date(2026, 1, 7)), "end date is inclusive")
	assert.False(t, cycle.ContainsDate(date(2025, 12, 31)))
	assert.False(t, cycle.ContainsDate(date(2026, 1, 8)))
}

func TestCycleApplyState(t *testing.T) {
	cycle, err := NewCycle(1, "A", date(2026, 1, 1), date(2026, 1, 7), ShiftDay)
	require.NoError(t, err)

	require.NoError(t, cycle.ApplyState(StateIncomplete))
	assert.Equal(t, StateIncomplete, cycle.State())

	require.NoError(t, cycle.ApplyState(StateComplete))
	assert.Equal(t, StateComplete, cycle.State())

	// derived states can move back when assignments are removed
	require.NoError(t, cycle.ApplyState(StateUndefined))
	assert.Equal(t, StateUndefined, cycle.State())

	assert.Error(t, cycle.ApplyState("PARCIAL"))
}

func TestCycleSetID(t *testing.T) {
	cycle, err := NewCycle(1, "A", date(2026, 1, 1), date(2026, 1, 7), ShiftDay)
	require.NoError(t, err)

	require.NoError(t, cycle.SetID(42))
	assert.Equal(t, uint(42), cycle.ID())
	assert.Error(t, cycle.SetID(43))
}

func TestReconstructCycle(t *testing.T) {
	cycle, err := ReconstructCycle(CycleReconstructParams{
		ID:         7,
		ContractID: 3,
		Letter:     "B",
		StartDate:  date(2026, 2, 1),
		EndDate:    date(2026, 2, 7),
		State:      "COMPLETO",
		Shift:      "NOCHE",
	})
	require.NoError(t, err)
	assert.Equal(t, StateComplete, cycle.State())
	assert.Equal(t, ShiftNight, cycle.Shift())

	// legacy rows stored before state tracking default to undefined
	cycle, err = ReconstructCycle(CycleReconstructParams{
		ID:         8,
		ContractID: 3,
		Letter:     "A",
		StartDate:  date(2026, 2, 1),
		EndDate:    date(2026, 2, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, StateUndefined, cycle.State())

	_, err = ReconstructCycle(CycleReconstructParams{ID: 0})
	assert.Error(t, err)
}

func TestNewRequirement(t *testing.T) {
	req, err := NewRequirement(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, req.RequiredCount())

	_, err = NewRequirement(0, 2, 3)
	assert.Error(t, err)
	_, err = NewRequirement(1, 0, 3)
	assert.Error(t, err)
	_, err = NewRequirement(1, 2, 0)
	assert.Error(t, err, "zero headcount is rejected")
	_, err = NewRequirement(1, 2, -1)
	assert.Error(t, err)
}

func TestRequirementSetRequiredCount(t *testing.T) {
	req, err := NewRequirement(1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, req.SetRequiredCount(5))
	assert.Equal(t, 5, req.RequiredCount())
	assert.Error(t, req.SetRequiredCount(0))
}

func TestNewAssignment(t *testing.T) {
	assignment, err := NewAssignment(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(1), assignment.CycleID())
	assert.Equal(t, uint(2), assignment.WorkerID())
	assert.False(t, assignment.AssignedAt().IsZero())

	_, err = NewAssignment(0, 2)
	assert.Error(t, err)
	_, err = NewAssignment(1, 0)
	assert.Error(t, err)
}
