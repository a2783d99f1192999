package organization

import (
	"fmt"
	"strings"
	"time"
)

// Company is a participant in a mining-services contract: either the
// principal (mine owner) or a contractor supplying crews.
type Company struct {
	id          uint
	name        string
	taxID       string
	isPrincipal bool
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCompany(name, taxID string, isPrincipal bool) (*Company, error) {
	name = strings.TrimSpace(name)
	taxID = strings.TrimSpace(taxID)

	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("company name too long (max 200 characters)")
	}
	if taxID == "" {
		return nil, fmt.Errorf("company tax id is required")
	}

	now := time.Now()
	return &Company{
		name:        name,
		taxID:       taxID,
		isPrincipal: isPrincipal,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCompany(id uint, name, taxID string, isPrincipal, active bool,
	createdAt, updatedAt time.Time) (*Company, error) {

	if id == 0 {
		return nil, fmt.Errorf("company ID cannot be zero")
	}

	return &Company{
		id:          id,
		name:        name,
		taxID:       taxID,
		isPrincipal: isPrincipal,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Company) ID() uint {
	return c.id
}

func (c *Company) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("company ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("company ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) TaxID() string {
	return c.taxID
}

func (c *Company) IsPrincipal() bool {
	return c.isPrincipal
}

func (c *Company) IsActive() bool {
	return c.active
}

// Deactivate soft-deletes the company. Companies are never hard-deleted.
func (c *Company) Deactivate() {
	c.active = false
	c.updatedAt = time.Now()
}

func (c *Company) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Company) UpdatedAt() time.Time {
	return c.updatedAt
}

// corporateSuffixes are legal-form tokens stripped when matching imported
// company names against stored ones ("Acme SpA" resolves to "Acme").
var corporateSuffixes = []string{" SpA", " Ltda", " S.A."}

// SimplifiedName returns the company name with a trailing legal-form suffix
// removed, for loose matching during bulk import. Suffix tokens elsewhere in
// the name are part of it and stay.
func SimplifiedName(name string) string {
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSuffix(name, suffix)
		}
	}
	return name
}
