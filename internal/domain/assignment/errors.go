package assignment

import "errors"

var (
	// ErrCallNotFound indicates the call record doesn't exist.
	ErrCallNotFound = errors.New("call record not found")
	// ErrAssignmentNotFound indicates the assignment doesn't exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrInvalidInput indicates invalid input for assignment operations.
	ErrInvalidInput = errors.New("invalid assignment input")
)
