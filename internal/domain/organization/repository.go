package organization

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	GetByTaxID(ctx context.Context, taxID string) (*Company, error)
	ListAll(ctx context.Context) ([]*Company, error)
	List(ctx context.Context, activeOnly *bool) ([]*Company, error)
	Update(ctx context.Context, company *Company) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	ListAll(ctx context.Context) ([]*Project, error)
	List(ctx context.Context, activeOnly *bool) ([]*Project, error)
	Update(ctx context.Context, project *Project) error
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, serviceType *ServiceType) error
	GetByID(ctx context.Context, id uint) (*ServiceType, error)
	ListAll(ctx context.Context) ([]*ServiceType, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *Contract) error
	GetByID(ctx context.Context, id uint) (*Contract, error)
	GetByProjectAndCompany(ctx context.Context, projectID, companyID uint) (*Contract, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Contract, error)
	ListActiveByProject(ctx context.Context, projectID uint) ([]*Contract, error)
	ListAll(ctx context.Context) ([]*Contract, error)
	Update(ctx context.Context, contract *Contract) error
}
