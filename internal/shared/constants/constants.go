// Package constants defines shared constant values.
package constants

// Database table names
const (
	TableCompanies    = "companies"
	TableProjects     = "projects"
	TableServiceTypes = "service_types"
	TableContracts    = "contracts"
	TableJobTitles    = "job_titles"
	TableWorkers      = "workers"
	TableCycles       = "cycles"
	TableRequirements = "requirements"
	TableAssignments  = "assignments"
	TableUsers        = "users"
)

// Gin context keys
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Runtime environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)
