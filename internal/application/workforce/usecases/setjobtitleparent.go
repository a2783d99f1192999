package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/workforce/dto"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type SetJobTitleParentCommand struct {
	JobTitleID uint
	// ParentID nil promotes the title to a root of the organigram.
	ParentID *uint
}

type SetJobTitleParentResult struct {
	JobTitle dto.JobTitleDTO
}

// SetJobTitleParentUseCase rewires the reporting hierarchy. The whole
// project's titles are loaded so cycle detection sees the full graph.
type SetJobTitleParentUseCase struct {
	jobTitleRepo workforce.JobTitleRepository
	logger       logger.Interface
}

func NewSetJobTitleParentUseCase(jobTitleRepo workforce.JobTitleRepository, logger logger.Interface) *SetJobTitleParentUseCase {
	return &SetJobTitleParentUseCase{jobTitleRepo: jobTitleRepo, logger: logger}
}

func (uc *SetJobTitleParentUseCase) Execute(ctx context.Context, cmd SetJobTitleParentCommand) (*SetJobTitleParentResult, error) {
	if cmd.JobTitleID == 0 {
		return nil, errors.NewValidationError("job title ID is required")
	}

	title, err := uc.jobTitleRepo.GetByID(ctx, cmd.JobTitleID)
	if err != nil {
		return nil, errors.NewNotFoundError("job title not found")
	}

	titles, err := uc.jobTitleRepo.ListByProject(ctx, title.ProjectID())
	if err != nil {
		uc.logger.Errorw("failed to load project titles", "error", err, "project_id", title.ProjectID())
		return nil, fmt.Errorf("failed to load project titles: %w", err)
	}

	hierarchy := workforce.NewHierarchy(titles)
	if err := hierarchy.SetParent(cmd.JobTitleID, cmd.ParentID); err != nil {
		switch err {
		case workforce.ErrJobTitleNotFound:
			return nil, errors.NewNotFoundError("parent job title not found")
		case workforce.ErrHierarchyCycle:
			return nil, errors.NewValidationError("parent assignment would create a reporting cycle")
		default:
			return nil, err
		}
	}

	updated := hierarchy.Get(cmd.JobTitleID)
	if err := uc.jobTitleRepo.Update(ctx, updated); err != nil {
		uc.logger.Errorw("failed to update job title", "error", err, "job_title_id", cmd.JobTitleID)
		return nil, fmt.Errorf("failed to update job title: %w", err)
	}

	uc.logger.Infow("job title parent updated", "job_title_id", cmd.JobTitleID)
	return &SetJobTitleParentResult{JobTitle: dto.JobTitleFromDomain(updated)}, nil
}
