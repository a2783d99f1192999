package organization

import "errors"

var (
	// ErrCompanyNotFound is returned when a company is not found
	ErrCompanyNotFound = errors.New("company not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrContractNotFound is returned when a contract is not found
	ErrContractNotFound = errors.New("contract not found")

	// ErrDuplicateTaxID is returned when a company with the same tax id exists
	ErrDuplicateTaxID = errors.New("company with this tax id already exists")
)
