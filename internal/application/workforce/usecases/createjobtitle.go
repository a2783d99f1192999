package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/workforce/dto"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type CreateJobTitleCommand struct {
	Name      string
	ProjectID uint
	CompanyID uint
	Level     string
	ParentID  *uint
}

type CreateJobTitleResult struct {
	JobTitle dto.JobTitleDTO
}

type CreateJobTitleUseCase struct {
	jobTitleRepo workforce.JobTitleRepository
	logger       logger.Interface
}

func NewCreateJobTitleUseCase(jobTitleRepo workforce.JobTitleRepository, logger logger.Interface) *CreateJobTitleUseCase {
	return &CreateJobTitleUseCase{jobTitleRepo: jobTitleRepo, logger: logger}
}

func (uc *CreateJobTitleUseCase) Execute(ctx context.Context, cmd CreateJobTitleCommand) (*CreateJobTitleResult, error) {
	uc.logger.Infow("executing create job title use case", "name", cmd.Name)

	name := workforce.NormalizeTitleName(cmd.Name)

	if existing, err := uc.jobTitleRepo.GetByNameInScope(ctx, name, cmd.ProjectID, cmd.CompanyID); err == nil && existing != nil {
		return nil, errors.NewConflictError("a job title with this name already exists for the project and company")
	}

	title, err := workforce.NewJobTitle(name, cmd.ProjectID, cmd.CompanyID, workforce.SeniorityLevel(cmd.Level))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.jobTitleRepo.Create(ctx, title); err != nil {
		uc.logger.Errorw("failed to create job title", "error", err)
		return nil, fmt.Errorf("failed to create job title: %w", err)
	}

	if cmd.ParentID != nil {
		if err := uc.assignParent(ctx, title, *cmd.ParentID); err != nil {
			return nil, err
		}
	}

	uc.logger.Infow("job title created", "job_title_id", title.ID(), "name", title.Name())
	return &CreateJobTitleResult{JobTitle: dto.JobTitleFromDomain(title)}, nil
}

func (uc *CreateJobTitleUseCase) assignParent(ctx context.Context, title *workforce.JobTitle, parentID uint) error {
	titles, err := uc.jobTitleRepo.ListByProject(ctx, title.ProjectID())
	if err != nil {
		return fmt.Errorf("failed to load project titles: %w", err)
	}

	hierarchy := workforce.NewHierarchy(titles)
	if err := hierarchy.SetParent(title.ID(), &parentID); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return uc.jobTitleRepo.Update(ctx, title)
}
