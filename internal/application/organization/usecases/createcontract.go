package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type CreateContractCommand struct {
	ProjectID     uint
	ServiceTypeID uint
	CompanyID     uint
	ShiftPattern  string
	RotationTag   string
}

type CreateContractResult struct {
	Contract dto.ContractDTO
}

type CreateContractUseCase struct {
	contractRepo    organization.ContractRepository
	projectRepo     organization.ProjectRepository
	companyRepo     organization.CompanyRepository
	serviceTypeRepo organization.ServiceTypeRepository
	logger          logger.Interface
}

func NewCreateContractUseCase(
	contractRepo organization.ContractRepository,
	projectRepo organization.ProjectRepository,
	companyRepo organization.CompanyRepository,
	serviceTypeRepo organization.ServiceTypeRepository,
	logger logger.Interface,
) *CreateContractUseCase {
	return &CreateContractUseCase{
		contractRepo:    contractRepo,
		projectRepo:     projectRepo,
		companyRepo:     companyRepo,
		serviceTypeRepo: serviceTypeRepo,
		logger:          logger,
	}
}

func (uc *CreateContractUseCase) Execute(ctx context.Context, cmd CreateContractCommand) (*CreateContractResult, error) {
	uc.logger.Infow("executing create contract use case",
		"project_id", cmd.ProjectID,
		"company_id", cmd.CompanyID,
	)

	if _, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID); err != nil {
		return nil, errors.NewNotFoundError("project not found")
	}
	if _, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID); err != nil {
		return nil, errors.NewNotFoundError("company not found")
	}
	if _, err := uc.serviceTypeRepo.GetByID(ctx, cmd.ServiceTypeID); err != nil {
		return nil, errors.NewNotFoundError("service type not found")
	}

	// the bulk import maps rows to contracts by (project, company), so a
	// second active contract for the pair would make rows ambiguous
	if existing, err := uc.contractRepo.GetByProjectAndCompany(ctx, cmd.ProjectID, cmd.CompanyID); err == nil && existing != nil && existing.IsActive() {
		return nil, errors.NewConflictError("an active contract already exists for this project and company")
	}

	contract, err := organization.NewContract(cmd.ProjectID, cmd.ServiceTypeID, cmd.CompanyID,
		organization.ShiftPattern(cmd.ShiftPattern), cmd.RotationTag)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		uc.logger.Errorw("failed to create contract", "error", err)
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	uc.logger.Infow("contract created", "contract_id", contract.ID())
	return &CreateContractResult{Contract: dto.ContractFromDomain(contract)}, nil
}
