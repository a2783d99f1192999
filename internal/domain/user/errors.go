package user

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when email or password do not match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrDuplicateEmail is returned when a user with the same email exists
	ErrDuplicateEmail = errors.New("user with this email already exists")
)
