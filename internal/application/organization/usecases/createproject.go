package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

const dateLayout = "2006-01-02"

type CreateProjectCommand struct {
	Name        string
	Description string
	StartDate   string
	EndDate     string
}

type CreateProjectResult struct {
	Project dto.ProjectDTO
}

type CreateProjectUseCase struct {
	projectRepo organization.ProjectRepository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo organization.ProjectRepository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	uc.logger.Infow("executing create project use case", "name", cmd.Name)

	start, err := time.Parse(dateLayout, cmd.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid start date, expected YYYY-MM-DD")
	}
	var end *time.Time
	if cmd.EndDate != "" {
		parsed, err := time.Parse(dateLayout, cmd.EndDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid end date, expected YYYY-MM-DD")
		}
		end = &parsed
	}

	project, err := organization.NewProject(cmd.Name, cmd.Description, start, end)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Create(ctx, project); err != nil {
		uc.logger.Errorw("failed to create project", "error", err)
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	uc.logger.Infow("project created", "project_id", project.ID(), "name", project.Name())
	return &CreateProjectResult{Project: dto.ProjectFromDomain(project)}, nil
}
