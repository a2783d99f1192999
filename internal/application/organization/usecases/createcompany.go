package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type CreateCompanyCommand struct {
	Name        string
	TaxID       string
	IsPrincipal bool
}

type CreateCompanyResult struct {
	Company dto.CompanyDTO
}

type CreateCompanyUseCase struct {
	companyRepo organization.CompanyRepository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo organization.CompanyRepository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error) {
	uc.logger.Infow("executing create company use case", "name", cmd.Name)

	if existing, err := uc.companyRepo.GetByTaxID(ctx, cmd.TaxID); err == nil && existing != nil {
		return nil, errors.NewConflictError("a company with this tax id already exists")
	}

	company, err := organization.NewCompany(cmd.Name, cmd.TaxID, cmd.IsPrincipal)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Create(ctx, company); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a company with this tax id already exists")
		}
		uc.logger.Errorw("failed to create company", "error", err)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	uc.logger.Infow("company created", "company_id", company.ID(), "name", company.Name())
	return &CreateCompanyResult{Company: dto.CompanyFromDomain(company)}, nil
}
