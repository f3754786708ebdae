package util

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	CodePermissionDenied     = "PERMISSION_DENIED"
	CodeSelfServiceForbidden = "SELF_SERVICE_FORBIDDEN"
	CodeInvalidTransition    = "INVALID_TRANSITION"
	CodeNotFound             = "NOT_FOUND"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeStoreError           = "STORE_ERROR"
	CodeExternalService      = "EXTERNAL_SERVICE_ERROR"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeConflict             = "CONFLICT"
	CodeInternal             = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewPermissionDenied indicates the actor lacks the required permission.
func NewPermissionDenied(message string) error {
	if message == "" {
		message = "permission denied"
	}
	return NewDomainError(CodePermissionDenied, message, http.StatusForbidden, nil)
}

// NewSelfServiceForbidden indicates a technician acting on their own ticket.
func NewSelfServiceForbidden() error {
	return NewDomainError(CodeSelfServiceForbidden,
		"technicians may not work tickets they authored", http.StatusForbidden, nil)
}

// NewInvalidTransition indicates the requested status change is not reachable.
func NewInvalidTransition(from, to string) error {
	return NewDomainError(CodeInvalidTransition,
		fmt.Sprintf("cannot move ticket from %s to %s", from, to),
		http.StatusConflict,
		map[string]any{"from": from, "to": to})
}

// NewValidationError indicates input failed required-field or type checks.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(CodeValidationFailed, message, http.StatusBadRequest, details)
}

// NewNotFound indicates a referenced entity does not exist.
func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

// NewStoreError wraps a persistence read/write failure.
func NewStoreError(err error) error {
	return &DomainError{
		Code:       CodeStoreError,
		Message:    "store operation failed",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewExternalServiceError wraps a failed optional external call. Always
// non-fatal to the surrounding operation; callers catch it at the boundary.
func NewExternalServiceError(err error) error {
	return &DomainError{
		Code:       CodeExternalService,
		Message:    "external service call failed",
		HTTPStatus: http.StatusBadGateway,
		Err:        err,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError(CodeUnauthorized, message, http.StatusUnauthorized, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError(CodeConflict, message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       CodeInternal,
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}
