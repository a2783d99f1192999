package roster

import "errors"

var (
	// ErrCycleNotFound is returned when a cycle is not found
	ErrCycleNotFound = errors.New("cycle not found")

	// ErrRequirementNotFound is returned when a requirement is not found
	ErrRequirementNotFound = errors.New("requirement not found")

	// ErrAssignmentNotFound is returned when an assignment is not found
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrDuplicateAssignment is returned when the worker is already assigned
	// to the cycle
	ErrDuplicateAssignment = errors.New("worker is already assigned to this cycle")
)
