package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type GetJobTitleTreeCommand struct {
	ProjectID uint
}

type GetJobTitleTreeResult struct {
	Roots []*workforce.TreeNode
}

// GetJobTitleTreeUseCase builds the organigram for a project: one tree per
// root title.
type GetJobTitleTreeUseCase struct {
	jobTitleRepo workforce.JobTitleRepository
	logger       logger.Interface
}

func NewGetJobTitleTreeUseCase(jobTitleRepo workforce.JobTitleRepository, logger logger.Interface) *GetJobTitleTreeUseCase {
	return &GetJobTitleTreeUseCase{jobTitleRepo: jobTitleRepo, logger: logger}
}

func (uc *GetJobTitleTreeUseCase) Execute(ctx context.Context, cmd GetJobTitleTreeCommand) (*GetJobTitleTreeResult, error) {
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	titles, err := uc.jobTitleRepo.ListByProject(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list job titles", "error", err, "project_id", cmd.ProjectID)
		return nil, fmt.Errorf("failed to list job titles: %w", err)
	}

	hierarchy := workforce.NewHierarchy(titles)
	result := &GetJobTitleTreeResult{Roots: []*workforce.TreeNode{}}
	for _, root := range hierarchy.Roots() {
		if node := hierarchy.BuildTree(root.ID()); node != nil {
			result.Roots = append(result.Roots, node)
		}
	}
	return result, nil
}
