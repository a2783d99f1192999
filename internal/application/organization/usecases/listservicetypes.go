package usecases

import (
	"context"

	"github.com/faena-hq/faena/internal/application/organization/dto"
	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/shared/logger"
)

type ListServiceTypesResult struct {
	ServiceTypes []dto.ServiceTypeDTO
}

type ListServiceTypesUseCase struct {
	serviceTypeRepo organization.ServiceTypeRepository
	logger          logger.Interface
}

func NewListServiceTypesUseCase(serviceTypeRepo organization.ServiceTypeRepository, logger logger.Interface) *ListServiceTypesUseCase {
	return &ListServiceTypesUseCase{serviceTypeRepo: serviceTypeRepo, logger: logger}
}

func (uc *ListServiceTypesUseCase) Execute(ctx context.Context) (*ListServiceTypesResult, error) {
	serviceTypes, err := uc.serviceTypeRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list service types", "error", err)
		return nil, err
	}

	result := &ListServiceTypesResult{ServiceTypes: make([]dto.ServiceTypeDTO, 0, len(serviceTypes))}
	for _, st := range serviceTypes {
		result.ServiceTypes = append(result.ServiceTypes, dto.ServiceTypeFromDomain(st))
	}
	return result, nil
}
