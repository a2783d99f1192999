package migration

import (
	"github.com/faena-hq/faena/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CompanyModel{},
		&models.ProjectModel{},
		&models.ServiceTypeModel{},
		&models.ContractModel{},
		&models.JobTitleModel{},
		&models.WorkerModel{},
		&models.CycleModel{},
		&models.RequirementModel{},
		&models.AssignmentModel{},
		&models.UserModel{},
	}
}
