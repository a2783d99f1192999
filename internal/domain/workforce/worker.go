package workforce

import (
	"fmt"
	"strings"
	"time"
)

// Worker is an employee of a contractor company, optionally attached to a
// project and a job title. The national id (RUT) is the natural key used by
// the bulk import to deduplicate people across event rows.
type Worker struct {
	id         uint
	nationalID string
	firstNames string
	lastNames  string
	email      string
	phone      string
	companyID  uint
	projectID  *uint
	jobTitleID *uint
	active     bool
	hiredAt    *time.Time
	createdAt  time.Time
	updatedAt  time.Time
}

// WorkerParams carries the fields for creating a worker.
type WorkerParams struct {
	NationalID string
	FirstNames string
	LastNames  string
	Email      string
	Phone      string
	CompanyID  uint
	ProjectID  *uint
	JobTitleID *uint
	HiredAt    *time.Time
}

func NewWorker(params WorkerParams) (*Worker, error) {
	nationalID := strings.TrimSpace(params.NationalID)
	firstNames := strings.TrimSpace(params.FirstNames)
	lastNames := strings.TrimSpace(params.LastNames)

	if nationalID == "" {
		return nil, fmt.Errorf("worker national id is required")
	}
	if firstNames == "" {
		return nil, fmt.Errorf("worker first names are required")
	}
	if lastNames == "" {
		return nil, fmt.Errorf("worker last names are required")
	}
	if params.CompanyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}

	now := time.Now()
	return &Worker{
		nationalID: nationalID,
		firstNames: firstNames,
		lastNames:  lastNames,
		email:      strings.TrimSpace(params.Email),
		phone:      strings.TrimSpace(params.Phone),
		companyID:  params.CompanyID,
		projectID:  params.ProjectID,
		jobTitleID: params.JobTitleID,
		active:     true,
		hiredAt:    params.HiredAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// WorkerReconstructParams carries stored worker state back into the domain.
type WorkerReconstructParams struct {
	ID         uint
	NationalID string
	FirstNames string
	LastNames  string
	Email      string
	Phone      string
	CompanyID  uint
	ProjectID  *uint
	JobTitleID *uint
	Active     bool
	HiredAt    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func ReconstructWorker(params WorkerReconstructParams) (*Worker, error) {
	if params.ID == 0 {
		return nil, fmt.Errorf("worker ID cannot be zero")
	}

	return &Worker{
		id:         params.ID,
		nationalID: params.NationalID,
		firstNames: params.FirstNames,
		lastNames:  params.LastNames,
		email:      params.Email,
		phone:      params.Phone,
		companyID:  params.CompanyID,
		projectID:  params.ProjectID,
		jobTitleID: params.JobTitleID,
		active:     params.Active,
		hiredAt:    params.HiredAt,
		createdAt:  params.CreatedAt,
		updatedAt:  params.UpdatedAt,
	}, nil
}

func (w *Worker) ID() uint {
	return w.id
}

func (w *Worker) SetID(id uint) error {
	if w.id != 0 {
		return fmt.Errorf("worker ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("worker ID cannot be zero")
	}
	w.id = id
	return nil
}

func (w *Worker) NationalID() string {
	return w.nationalID
}

func (w *Worker) FirstNames() string {
	return w.firstNames
}

func (w *Worker) LastNames() string {
	return w.lastNames
}

// FullName returns first and last names joined.
func (w *Worker) FullName() string {
	return w.firstNames + " " + w.lastNames
}

func (w *Worker) Email() string {
	return w.email
}

func (w *Worker) Phone() string {
	return w.phone
}

func (w *Worker) CompanyID() uint {
	return w.companyID
}

func (w *Worker) ProjectID() *uint {
	return w.projectID
}

func (w *Worker) JobTitleID() *uint {
	return w.jobTitleID
}

func (w *Worker) IsActive() bool {
	return w.active
}

// Deactivate soft-deletes the worker.
func (w *Worker) Deactivate() {
	w.active = false
	w.updatedAt = time.Now()
}

func (w *Worker) HiredAt() *time.Time {
	return w.hiredAt
}

func (w *Worker) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Worker) UpdatedAt() time.Time {
	return w.updatedAt
}
