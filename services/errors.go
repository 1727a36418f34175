package services

import "errors"

var (
	ErrVisitNotFound = errors.New("visit not found")
	ErrPlanNotFound  = errors.New("plan not found")
)

// ValidationError is returned before anything is written, so a failed
// validation never leaves a row behind.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
