package workforce

import "errors"

var (
	// ErrJobTitleNotFound is returned when a job title is not found
	ErrJobTitleNotFound = errors.New("job title not found")

	// ErrWorkerNotFound is returned when a worker is not found
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrHierarchyCycle is returned when a parent assignment would create a
	// cycle in the reporting graph
	ErrHierarchyCycle = errors.New("parent assignment would create a reporting cycle")

	// ErrDuplicateNationalID is returned when a worker with the same
	// national id already exists
	ErrDuplicateNationalID = errors.New("worker with this national id already exists")
)
