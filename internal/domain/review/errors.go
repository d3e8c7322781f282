package review

import "errors"

var (
	// ErrAssignmentNotFound indicates the owning assignment doesn't exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrResponseNotFound indicates no response exists for the assignment.
	ErrResponseNotFound = errors.New("audit response not found")
	// ErrInvalidInput indicates invalid input for review operations.
	ErrInvalidInput = errors.New("invalid review input")
)
