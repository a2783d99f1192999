package organization

import (
	"fmt"
	"time"
)

// ShiftPattern enumerates how many rotation crews a contract runs.
type ShiftPattern string

const (
	// ShiftPatternAB runs two alternating crews.
	ShiftPatternAB ShiftPattern = "AB"
	// ShiftPatternABCD runs four crews (day/night pairs).
	ShiftPatternABCD ShiftPattern = "ABCD"
)

func (p ShiftPattern) IsValid() bool {
	return p == ShiftPatternAB || p == ShiftPatternABCD
}

// Letters returns the rotation letters valid under this pattern.
func (p ShiftPattern) Letters() []string {
	if p == ShiftPatternAB {
		return []string{"A", "B"}
	}
	return []string{"A", "B", "C", "D"}
}

// Contract links a project, a service type and a contractor company.
// In practice at most one contract is active per (project, company) pair;
// the bulk import relies on that when mapping event rows to contracts.
type Contract struct {
	id            uint
	projectID     uint
	serviceTypeID uint
	companyID     uint
	shiftPattern  ShiftPattern
	rotationTag   string
	active        bool
	startDate     *time.Time
	endDate       *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

func NewContract(projectID, serviceTypeID, companyID uint, shiftPattern ShiftPattern, rotationTag string) (*Contract, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if serviceTypeID == 0 {
		return nil, fmt.Errorf("service type ID is required")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !shiftPattern.IsValid() {
		return nil, fmt.Errorf("invalid shift pattern: %s", shiftPattern)
	}
	if rotationTag == "" {
		rotationTag = "7x7"
	}

	now := time.Now()
	return &Contract{
		projectID:     projectID,
		serviceTypeID: serviceTypeID,
		companyID:     companyID,
		shiftPattern:  shiftPattern,
		rotationTag:   rotationTag,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ContractReconstructParams carries stored contract state back into the domain.
type ContractReconstructParams struct {
	ID            uint
	ProjectID     uint
	ServiceTypeID uint
	CompanyID     uint
	ShiftPattern  string
	RotationTag   string
	Active        bool
	StartDate     *time.Time
	EndDate       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructContract(params ContractReconstructParams) (*Contract, error) {
	if params.ID == 0 {
		return nil, fmt.Errorf("contract ID cannot be zero")
	}

	pattern := ShiftPattern(params.ShiftPattern)
	if !pattern.IsValid() {
		return nil, fmt.Errorf("invalid shift pattern: %s", params.ShiftPattern)
	}

	return &Contract{
		id:            params.ID,
		projectID:     params.ProjectID,
		serviceTypeID: params.ServiceTypeID,
		companyID:     params.CompanyID,
		shiftPattern:  pattern,
		rotationTag:   params.RotationTag,
		active:        params.Active,
		startDate:     params.StartDate,
		endDate:       params.EndDate,
		createdAt:     params.CreatedAt,
		updatedAt:     params.UpdatedAt,
	}, nil
}

func (c *Contract) ID() uint {
	return c.id
}

func (c *Contract) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("contract ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("contract ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Contract) ProjectID() uint {
	return c.projectID
}

func (c *Contract) ServiceTypeID() uint {
	return c.serviceTypeID
}

func (c *Contract) CompanyID() uint {
	return c.companyID
}

func (c *Contract) ShiftPattern() ShiftPattern {
	return c.shiftPattern
}

func (c *Contract) RotationTag() string {
	return c.rotationTag
}

func (c *Contract) IsActive() bool {
	return c.active
}

func (c *Contract) StartDate() *time.Time {
	return c.startDate
}

func (c *Contract) EndDate() *time.Time {
	return c.endDate
}

func (c *Contract) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Contract) UpdatedAt() time.Time {
	return c.updatedAt
}
