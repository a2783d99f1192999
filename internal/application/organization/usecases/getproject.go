package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type GetProjectCommand struct {
	ProjectID uint
}

type GetProjectResult struct {
	Project   dto.ProjectDTO
	Contracts []dto.ContractDTO
}

type GetProjectUseCase struct {
	projectRepo  organization.ProjectRepository
	contractRepo organization.ContractRepository
	logger       logger.Interface
}

func NewGetProjectUseCase(
	projectRepo organization.ProjectRepository,
	contractRepo organization.ContractRepository,
	logger logger.Interface,
) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, contractRepo: contractRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, cmd GetProjectCommand) (*GetProjectResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	project, err := uc.projectRepo.GetByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	contracts, err := uc.contractRepo.ListByProject(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list contracts", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	result := &GetProjectResult{
		Project:   dto.ProjectFromDomain(project),
		Contracts: make([]dto.ContractDTO, 0, len(contracts)),
	}
	for _, contract := range contracts {
		result.Contracts = append(result.Contracts, dto.ContractFromDomain(contract))
	}
	return result, nil
}
