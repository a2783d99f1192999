package workforce

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func title(t *testing.T, id uint, name string, parentID *uint) *JobTitle {
	t.Helper()
	jt, err := ReconstructJobTitle(id, name, 1, 1, parentID,
		string(LevelOperational), time.Now(), time.Now())
	require.NoError(t, err)
	return jt
}

func uintPtr(v uint) *uint { return &v }

func TestNormalizeTitleName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"all caps", "PERFORISTA DE SONDAJE", "Perforista De Sondaje"},
		{"all lower", "perforista de sondaje", "Perforista De Sondaje"},
		{"mixed", "PerFORista", "Perforista"},
		{"trims", "  Supervisor  ", "Supervisor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitleName(tt.in))
		})
	}
}

func TestHierarchySetParent(t *testing.T) {
	h := NewHierarchy([]*JobTitle{
		title(t, 1, "Gerente", nil),
		title(t, 2, "Supervisor", uintPtr(1)),
		title(t, 3, "Perforista", uintPtr(2)),
	})

	// reparenting within the tree is fine
	require.NoError(t, h.SetParent(3, uintPtr(1)))
	assert.Equal(t, uint(1), *h.Get(3).ParentID())

	// clearing the parent promotes to root
	require.NoError(t, h.SetParent(3, nil))
	assert.Nil(t, h.Get(3).ParentID())
}

func TestHierarchyRejectsCycles(t *testing.T) {
	h := NewHierarchy([]*JobTitle{
		title(t, 1, "Gerente", nil),
		title(t, 2, "Supervisor", uintPtr(1)),
		title(t, 3, "Perforista", uintPtr(2)),
	})

	assert.ErrorIs(t, h.SetParent(1, uintPtr(1)), ErrHierarchyCycle, "self parent")
	assert.ErrorIs(t, h.SetParent(1, uintPtr(3)), ErrHierarchyCycle, "descendant parent")
	assert.ErrorIs(t, h.SetParent(1, uintPtr(2)), ErrHierarchyCycle, "direct child parent")

	assert.ErrorIs(t, h.SetParent(99, uintPtr(1)), ErrJobTitleNotFound)
	assert.ErrorIs(t, h.SetParent(1, uintPtr(99)), ErrJobTitleNotFound)
}

func TestHierarchyBuildTree(t *testing.T) {
	h := NewHierarchy([]*JobTitle{
		title(t, 1, "Gerente", nil),
		title(t, 2, "Supervisor Noche", uintPtr(1)),
		title(t, 3, "Supervisor Dia", uintPtr(1)),
		title(t, 4, "Perforista", uintPtr(3)),
	})

	tree := h.BuildTree(1)
	require.NotNil(t, tree)
	assert.Equal(t, "Gerente", tree.Name)
	require.Len(t, tree.Children, 2)
	// children sorted by name
	assert.Equal(t, "Supervisor Dia", tree.Children[0].Name)
	assert.Equal(t, "Supervisor Noche", tree.Children[1].Name)
	require.Len(t, tree.Children[0].Children, 1)
	assert.Equal(t, "Perforista", tree.Children[0].Children[0].Name)

	assert.Nil(t, h.BuildTree(99))
}

func TestHierarchyRoots(t *testing.T) {
	h := NewHierarchy([]*JobTitle{
		title(t, 1, "Gerente", nil),
		title(t, 2, "Jefe de Turno", nil),
		title(t, 3, "Perforista", uintPtr(1)),
	})

	roots := h.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "Gerente", roots[0].Name())
	assert.Equal(t, "Jefe de Turno", roots[1].Name())
}

func TestNewWorker(t *testing.T) {
	worker, err := NewWorker(WorkerParams{
		NationalID: "12.345.678-9",
		FirstNames: "Juan Pablo",
		LastNames:  "Rojas Soto",
		CompanyID:  1,
	})
	require.NoError(t, err)
	assert.True(t, worker.IsActive())
	assert.Equal(t, "Juan Pablo Rojas Soto", worker.FullName())

	_, err = NewWorker(WorkerParams{FirstNames: "Juan", LastNames: "Rojas", CompanyID: 1})
	assert.Error(t, err, "national id required")

	_, err = NewWorker(WorkerParams{NationalID: "1-9", FirstNames: "Juan", LastNames: "Rojas"})
	assert.Error(t, err, "company required")
}
