package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ListProjectsCommand struct {
	ActiveOnly *bool
}

type ListProjectsResult struct {
	Projects []dto.ProjectDTO
}

type ListProjectsUseCase struct {
	projectRepo organization.ProjectRepository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo organization.ProjectRepository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, cmd ListProjectsCommand) (*ListProjectsResult, error) {
	projects, err := uc.projectRepo.List(ctx, cmd.ActiveOnly)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err)
		return nil, err
	}

	result := &ListProjectsResult{Projects: make([]dto.ProjectDTO, 0, len(projects))}
	for _, project := range projects {
		result.Projects = append(result.Projects, dto.ProjectFromDomain(project))
	}
	return result, nil
}
