package organization

import (
	"fmt"
	"strings"
	"time"
)

// ServiceType is the kind of service a contractor provides under a contract
// (drilling, catering, maintenance, ...).
type ServiceType struct {
	id          uint
	name        string
	description string
	active      bool
	createdAt   time.Time
}

func NewServiceType(name, description string) (*ServiceType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("service type name is required")
	}

	return &ServiceType{
		name:        name,
		description: description,
		active:      true,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructServiceType(id uint, name, description string, active bool, createdAt time.Time) (*ServiceType, error) {
	if id == 0 {
		return nil, fmt.Errorf("service type ID cannot be zero")
	}

	return &ServiceType{
		id:          id,
		name:        name,
		description: description,
		active:      active,
		createdAt:   createdAt,
	}, nil
}

func (s *ServiceType) ID() uint {
	return s.id
}

func (s *ServiceType) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("service type ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("service type ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *ServiceType) Name() string {
	return s.name
}

func (s *ServiceType) Description() string {
	return s.description
}

func (s *ServiceType) IsActive() bool {
	return s.active
}

func (s *ServiceType) CreatedAt() time.Time {
	return s.createdAt
}
