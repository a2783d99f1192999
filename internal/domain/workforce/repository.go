package workforce

import "context"

type JobTitleRepository interface {
	Create(ctx context.Context, title *JobTitle) error
	GetByID(ctx context.Context, id uint) (*JobTitle, error)
	// GetByNameInScope matches a normalized name case-insensitively within a
	// project and company; the bulk import uses it to deduplicate titles.
	GetByNameInScope(ctx context.Context, name string, projectID, companyID uint) (*JobTitle, error)
	ListByProject(ctx context.Context, projectID uint) ([]*JobTitle, error)
	Update(ctx context.Context, title *JobTitle) error
}

type WorkerRepository interface {
	Create(ctx context.Context, worker *Worker) error
	GetByID(ctx context.Context, id uint) (*Worker, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Worker, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Worker, error)
	ListByProject(ctx context.Context, projectID uint, activeOnly *bool) ([]*Worker, error)
	CountActiveByProject(ctx context.Context, projectID uint) (int64, error)
	Update(ctx context.Context, worker *Worker) error
}
