package models

import "fmt"

// The error types below represent business-rule outcomes, not transient
// failures. They are returned to the caller verbatim and are never retried by
// the services themselves: nothing is mutated on a failure path, so retrying
// a failed call is always safe.

// ValidationError indicates malformed or unacceptable input: a negative stock
// attempt, an unmet coupon minimum, an invalid date range, an unknown reason.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// StateError indicates an illegal order status transition, including a repeat
// cancel or a repeat payment confirmation.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string {
	return e.Msg
}

// NewStateError creates a StateError with a formatted message.
func NewStateError(format string, args ...interface{}) *StateError {
	return &StateError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates an unknown order, product or coupon id.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string {
	return e.Msg
}

// NewNotFoundError creates a NotFoundError with a formatted message.
func NewNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Msg: fmt.Sprintf(format, args...)}
}

// ConflictError indicates a lost race: stock or the last allowed use of a
// capped coupon was taken by a concurrent caller.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

// NewConflictError creates a ConflictError with a formatted message.
func NewConflictError(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
