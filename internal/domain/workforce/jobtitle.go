package workforce

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SeniorityLevel places a job title in the reporting ladder.
type SeniorityLevel string

const (
	LevelManagement      SeniorityLevel = "MANAGEMENT"
	LevelSupervisionHead SeniorityLevel = "SUPERVISION_HEAD"
	LevelSupervision     SeniorityLevel = "SUPERVISION"
	LevelOperational     SeniorityLevel = "OPERATIONAL"
)

func (l SeniorityLevel) IsValid() bool {
	switch l {
	case LevelManagement, LevelSupervisionHead, LevelSupervision, LevelOperational:
		return true
	}
	return false
}

var titleCaser = cases.Title(language.Und)

// NormalizeTitleName folds a free-text job title name to title case so that
// "PERFORISTA DE SONDAJE" and "perforista de sondaje" key the same title.
func NormalizeTitleName(name string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
}

// JobTitle is a named role within a project and company. The reporting
// parent is held as an optional id, never a pointer; tree building and
// cycle detection walk an id-keyed arena (see Hierarchy).
type JobTitle struct {
	id        uint
	name      string
	projectID uint
	companyID uint
	parentID  *uint
	level     SeniorityLevel
	createdAt time.Time
	updatedAt time.Time
}

func NewJobTitle(name string, projectID, companyID uint, level SeniorityLevel) (*JobTitle, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("job title name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("job title name too long (max 200 characters)")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if level == "" {
		level = LevelOperational
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("invalid seniority level: %s", level)
	}

	now := time.Now()
	return &JobTitle{
		name:      name,
		projectID: projectID,
		companyID: companyID,
		level:     level,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructJobTitle(id uint, name string, projectID, companyID uint,
	parentID *uint, level string, createdAt, updatedAt time.Time) (*JobTitle, error) {

	if id == 0 {
		return nil, fmt.Errorf("job title ID cannot be zero")
	}

	seniorityLevel := SeniorityLevel(level)
	if !seniorityLevel.IsValid() {
		return nil, fmt.Errorf("invalid seniority level: %s", level)
	}

	return &JobTitle{
		id:        id,
		name:      name,
		projectID: projectID,
		companyID: companyID,
		parentID:  parentID,
		level:     seniorityLevel,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (j *JobTitle) ID() uint {
	return j.id
}

func (j *JobTitle) SetID(id uint) error {
	if j.id != 0 {
		return fmt.Errorf("job title ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("job title ID cannot be zero")
	}
	j.id = id
	return nil
}

func (j *JobTitle) Name() string {
	return j.name
}

func (j *JobTitle) ProjectID() uint {
	return j.projectID
}

func (j *JobTitle) CompanyID() uint {
	return j.companyID
}

func (j *JobTitle) ParentID() *uint {
	return j.parentID
}

func (j *JobTitle) Level() SeniorityLevel {
	return j.level
}

func (j *JobTitle) CreatedAt() time.Time {
	return j.createdAt
}

func (j *JobTitle) UpdatedAt() time.Time {
	return j.updatedAt
}

// setParent is used by Hierarchy after cycle checking.
func (j *JobTitle) setParent(parentID *uint) {
	j.parentID = parentID
	j.updatedAt = time.Now()
}
