package usecases

import (
	"context"
	"fmt"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/errors"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type DeactivateCompanyCommand struct {
	CompanyID uint
}

// DeactivateCompanyUseCase soft-deletes a company. History referencing the
// company (contracts, workers, assignments) stays intact.
type DeactivateCompanyUseCase struct {
	companyRepo organization.CompanyRepository
	logger      logger.Interface
}

func NewDeactivateCompanyUseCase(companyRepo organization.CompanyRepository, logger logger.Interface) *DeactivateCompanyUseCase {
	return &DeactivateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *DeactivateCompanyUseCase) Execute(ctx context.Context, cmd DeactivateCompanyCommand) error {
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	company, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return errors.NewNotFoundError("company not found")
	}

	company.Deactivate()
	if err := uc.companyRepo.Update(ctx, company); err != nil {
		uc.logger.Errorw("failed to deactivate company", "error", err, "company_id", cmd.CompanyID)
		return fmt.Errorf("failed to deactivate company: %w", err)
	}

	uc.logger.Infow("company deactivated", "company_id", cmd.CompanyID)
	return nil
}
