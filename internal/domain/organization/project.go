package organization

import (
	"fmt"
	"strings"
	"time"
)

// projectNamePrefix is stripped for loose matching during bulk import, where
// source rows may say "Quebrada Sur" for a stored "Proyecto Quebrada Sur".
const projectNamePrefix = "Proyecto "

// Project is a mine site operation owning zero or more contracts.
type Project struct {
	id          uint
	name        string
	description string
	active      bool
	startDate   time.Time
	endDate     *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(name, description string, startDate time.Time, endDate *time.Time) (*Project, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if startDate.IsZero() {
		return nil, fmt.Errorf("project start date is required")
	}
	if endDate != nil && endDate.Before(startDate) {
		return nil, fmt.Errorf("project end date cannot be before start date")
	}

	now := time.Now()
	return &Project{
		name:        name,
		description: description,
		active:      true,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(id uint, name, description string, active bool,
	startDate time.Time, endDate *time.Time, createdAt, updatedAt time.Time) (*Project, error) {

	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		startDate:   startDate,
		endDate:     endDate,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) IsActive() bool {
	return p.active
}

func (p *Project) StartDate() time.Time {
	return p.startDate
}

func (p *Project) EndDate() *time.Time {
	return p.endDate
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

// SimplifiedProjectName strips the conventional leading prefix for loose
// matching during bulk import. The token stays when it appears mid-name.
func SimplifiedProjectName(name string) string {
	return strings.TrimPrefix(name, projectNamePrefix)
}
