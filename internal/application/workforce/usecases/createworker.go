package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/application/workforce/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/domain/workforce"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type CreateWorkerCommand struct {
	NationalID string
	FirstNames string
	LastNames  string
	Email      string
	Phone      string
	CompanyID  uint
	ProjectID  *uint
	JobTitleID *uint
}

type CreateWorkerResult struct {
	Worker dto.WorkerDTO
}

type CreateWorkerUseCase struct {
	workerRepo   workforce.WorkerRepository
	companyRepo  organization.CompanyRepository
	jobTitleRepo workforce.JobTitleRepository
	logger       logger.Interface
}

func NewCreateWorkerUseCase(
	workerRepo workforce.WorkerRepository,
	companyRepo organization.CompanyRepository,
	jobTitleRepo workforce.JobTitleRepository,
	logger logger.Interface,
) *CreateWorkerUseCase {
	return &CreateWorkerUseCase{
		workerRepo:   workerRepo,
		companyRepo:  companyRepo,
		jobTitleRepo: jobTitleRepo,
		logger:       logger,
	}
}

func (uc *CreateWorkerUseCase) Execute(ctx context.Context, cmd CreateWorkerCommand) (*CreateWorkerResult, error) {
	uc.logger.Infow("executing create worker use case", "national_id", cmd.NationalID)

	if _, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID); err != nil {
		return nil, errors.NewNotFoundError("company not found")
	}
	if cmd.JobTitleID != nil {
		if _, err := uc.jobTitleRepo.GetByID(ctx, *cmd.JobTitleID); err != nil {
			return nil, errors.NewNotFoundError("job title not found")
		}
	}

	if existing, err := uc.workerRepo.GetByNationalID(ctx, cmd.NationalID); err == nil && existing != nil {
		return nil, errors.NewConflictError("a worker with this national id already exists")
	}

	worker, err := workforce.NewWorker(workforce.WorkerParams{
		NationalID: cmd.NationalID,
		FirstNames: cmd.FirstNames,
		LastNames:  cmd.LastNames,
		Email:      cmd.Email,
		Phone:      cmd.Phone,
		CompanyID:  cmd.CompanyID,
		ProjectID:  cmd.ProjectID,
		JobTitleID: cmd.JobTitleID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.workerRepo.Create(ctx, worker); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("a worker with this national id already exists")
		}
		uc.logger.Errorw("failed to create worker", "error", err)
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	uc.logger.Infow("worker created", "worker_id", worker.ID(), "national_id", worker.NationalID())
	return &CreateWorkerResult{Worker: dto.WorkerFromDomain(worker)}, nil
}
