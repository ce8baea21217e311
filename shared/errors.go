package shared

import (
	"errors"
	"fmt"
)

// ValidationFailedError reports malformed or inconsistent input. Details maps
// a field name to what is wrong with it.
type ValidationFailedError struct {
	Message string
	Details map[string]string
}

func (e *ValidationFailedError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

func NewValidationFailed(message string) *ValidationFailedError {
	return &ValidationFailedError{Message: message}
}

func NewFieldValidationFailed(field, problem string) *ValidationFailedError {
	return &ValidationFailedError{Message: "validation failed", Details: map[string]string{field: problem}}
}

type PermissionDeniedError struct {
	Message string
}

func (e *PermissionDeniedError) Error() string {
	return e.Message
}

func NewPermissionDenied(message string) *PermissionDeniedError {
	return &PermissionDeniedError{Message: message}
}

type InvalidTransitionError struct {
	Message string
	From    string
	To      string
}

func (e *InvalidTransitionError) Error() string {
	return e.Message
}

func NewInvalidTransition[S ~string](from, to S) *InvalidTransitionError {
	return &InvalidTransitionError{
		Message: fmt.Sprintf("transition from %q to %q is not allowed", from, to),
		From:    string(from),
		To:      string(to),
	}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFound(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

var ErrWriteNotPermitted = errors.New("write not permitted outside of a lifecycle operation")

func IsValidationFailed(err error) bool {
	var target *ValidationFailedError
	return errors.As(err, &target)
}

func IsPermissionDenied(err error) bool {
	var target *PermissionDeniedError
	return errors.As(err, &target)
}

func IsInvalidTransition(err error) bool {
	var target *InvalidTransitionError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
