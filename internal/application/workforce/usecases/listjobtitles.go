package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/workforce/dto"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ListJobTitlesCommand struct {
	ProjectID uint
}

type ListJobTitlesResult struct {
	JobTitles []dto.JobTitleDTO
}

// ListJobTitlesUseCase returns the flat job title list for a project; the
// organigram view lives in GetJobTitleTreeUseCase.
type ListJobTitlesUseCase struct {
	jobTitleRepo workforce.JobTitleRepository
	logger       logger.Interface
}

func NewListJobTitlesUseCase(jobTitleRepo workforce.JobTitleRepository, logger logger.Interface) *ListJobTitlesUseCase {
	return &ListJobTitlesUseCase{jobTitleRepo: jobTitleRepo, logger: logger}
}

func (uc *ListJobTitlesUseCase) Execute(ctx context.Context, cmd ListJobTitlesCommand) (*ListJobTitlesResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	titles, err := uc.jobTitleRepo.ListByProject(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list job titles", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}

	result := &ListJobTitlesResult{JobTitles: make([]dto.JobTitleDTO, 0, len(titles))}
	for _, title := range titles {
		result.JobTitles = append(result.JobTitles, dto.JobTitleFromDomain(title))
	}
	return result, nil
}
