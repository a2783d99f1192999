package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ListCompaniesCommand struct {
	ActiveOnly *bool
}

type ListCompaniesResult struct {
	Companies []dto.CompanyDTO
}

type ListCompaniesUseCase struct {
	companyRepo organization.CompanyRepository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo organization.CompanyRepository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, cmd ListCompaniesCommand) (*ListCompaniesResult, error) {
	companies, err := uc.companyRepo.List(ctx, cmd.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, err
	}

	result := &ListCompaniesResult{Companies: make([]dto.CompanyDTO, 0, len(companies))}
	for _, company := range companies {
		result.Companies = append(result.Companies, dto.CompanyFromDomain(company))
	}
	return result, nil
}
