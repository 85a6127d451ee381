package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrRosterRowNotFound    = errors.New("roster row not found")
	ErrGraduateNotFound     = errors.New("graduate profile not found")
	ErrStaffRequestNotFound = errors.New("staff request not found")
	ErrZoneNotFound         = errors.New("zone not found")
	ErrDepartmentNotFound   = errors.New("service department not found")
	ErrUserNotFound         = errors.New("user not found")

	// Claim errors
	ErrAlreadyClaimed = errors.New("roster row already claimed")

	// Status machine errors
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrDepartmentNotAssigned = errors.New("service department not assigned")
	ErrServiceNotStarted     = errors.New("service has not started")

	// Fulfillment errors
	ErrOverfulfilled    = errors.New("staff request already fulfilled")
	ErrNothingFulfilled = errors.New("staff request has no fulfilled assignments")
	ErrRequestNotOpen   = errors.New("staff request is not open for assignment")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
)

// FieldError is one field-level validation failure
type FieldError struct {
	Field   string `json:"field" example:"gender"`
	Message string `json:"message" example:"Gender must be MALE or FEMALE"`
}

// ValidationError carries every violated rule at once so the caller can
// correct the input in a single pass. It wraps ErrValidationFailed so
// errors.Is keeps working at call sites.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Unwrap implements errors.Unwrap
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Add appends a field-level failure
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors reports whether any rule was violated
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// NewValidationError creates an empty ValidationError ready for Add calls
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// TransitionError reports an attempted invalid status transition, naming
// both the current and the requested state.
type TransitionError struct {
	From string
	To   string
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

// Unwrap implements errors.Unwrap
func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// NewTransitionError creates a TransitionError for the given states
func NewTransitionError(from, to string) *TransitionError {
	return &TransitionError{From: from, To: to}
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
