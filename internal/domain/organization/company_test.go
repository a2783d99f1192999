package organization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompany(t *testing.T) {
	tests := []struct {
		name        string
		companyName string
		taxID       string
		isPrincipal bool
		wantErr     bool
	}{
		{name: "valid contractor", companyName: "Perforaciones Andinas SpA", taxID: "76.123.456-7"},
		{name: "valid principal", companyName: "Minera Quebrada Sur", taxID: "90.000.000-1", isPrincipal: true},
		{name: "trims whitespace", companyName: "  Acme  ", taxID: " 11.111.111-1 "},
		{name: "missing name", companyName: "", taxID: "76.123.456-7", wantErr: true},
		{name: "missing tax id", companyName: "Acme", taxID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			company, err := NewCompany(tt.companyName, tt.taxID, tt.isPrincipal)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, company.IsActive())
			assert.Equal(t, tt.isPrincipal, company.IsPrincipal())
		})
	}
}

func TestSimplifiedName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spa suffix", "Acme SpA", "Acme"},
		{"ltda suffix", "Perforaciones Andinas Ltda", "Perforaciones Andinas"},
		{"sa suffix", "Minera del Norte S.A.", "Minera del Norte"},
		{"no suffix", "Acme", "Acme"},
		{"suffix requires leading space", "AcmeSpA", "AcmeSpA"},
		{"only the trailing suffix is stripped", "SpA Holding Ltda", "SpA Holding"},
		{"mid-name token stays", "Acme SpA Norte", "Acme SpA Norte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimplifiedName(tt.in))
		})
	}
}

func TestSimplifiedProjectName(t *testing.T) {
	assert.Equal(t, "Quebrada Sur", SimplifiedProjectName("Proyecto Quebrada Sur"))
	assert.Equal(t, "Quebrada Sur", SimplifiedProjectName("Quebrada Sur"))
}

func TestCompanyDeactivate(t *testing.T) {
	company, err := NewCompany("Acme SpA", "76.123.456-7", false)
	require.NoError(t, err)

	company.Deactivate()
	assert.False(t, company.IsActive())
}

func TestNewProject(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	project, err := NewProject("Proyecto Quebrada Sur", "drilling campaign", start, nil)
	require.NoError(t, err)
	assert.True(t, project.IsActive())

	_, err = NewProject("", "", start, nil)
	assert.Error(t, err)

	before := start.AddDate(0, -1, 0)
	_, err = NewProject("Proyecto X", "", start, &before)
	assert.Error(t, err, "end before start is rejected")
}

func TestShiftPatternLetters(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, ShiftPatternAB.Letters())
	assert.Equal(t, []string{"A", "B", "C", "D"}, ShiftPatternABCD.Letters())
	assert.False(t, ShiftPattern("ABC").IsValid())
}

func TestNewContract(t *testing.T) {
	contract, err := NewContract(1, 2, 3, ShiftPatternABCD, "")
	require.NoError(t, err)
	assert.Equal(t, "7x7", contract.RotationTag(), "rotation tag defaults")
	assert.True(t, contract.IsActive())

	_, err = NewContract(0, 2, 3, ShiftPatternAB, "7x7")
	assert.Error(t, err)
	_, err = NewContract(1, 2, 3, "XY", "7x7")
	assert.Error(t, err)
}
