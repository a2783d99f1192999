package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/faena-hq/faena/internal/domain/organization"
	"github.com/faena-hq/faena/internal/infrastructure/migration"
	"github.com/faena-hq/faena/internal/shared/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema. Each
// test gets its own database, so tests never see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gormDB.AutoMigrate(migration.AutoMigrateModels()...))
	return gormDB
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func testDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedContract creates the company, project, service type and contract a
// roster row hangs from, and returns the contract.
func seedContract(t *testing.T, gormDB *gorm.DB) *organization.Contract {
	t.Helper()
	ctx := context.Background()

	company, err := organization.NewCompany("Minera Andes", "76.123.456-7", false)
	require.NoError(t, err)
	require.NoError(t, NewCompanyRepository(gormDB, testLogger()).Create(ctx, company))

	project, err := organization.NewProject("Tronadura Norte", "", testDate(2026, 1, 1), nil)
	require.NoError(t, err)
	require.NoError(t, NewProjectRepository(gormDB, testLogger()).Create(ctx, project))

	serviceType, err := organization.NewServiceType("Perforacion", "")
	require.NoError(t, err)
	require.NoError(t, NewServiceTypeRepository(gormDB, testLogger()).Create(ctx, serviceType))

	contract, err := organization.NewContract(project.ID(), serviceType.ID(), company.ID(), organization.ShiftPatternAB, "7x7")
	require.NoError(t, err)
	require.NoError(t, NewContractRepository(gormDB, testLogger()).Create(ctx, contract))

	return contract
}
