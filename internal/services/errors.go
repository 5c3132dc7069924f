package services

import (
	"errors"
	"strings"
)

// ErrorCode classifies a ServiceError.
type ErrorCode string

const (
	ErrorInvalid  ErrorCode = "invalid"
	ErrorBlocked  ErrorCode = "blocked"
	ErrorRejected ErrorCode = "rejected"
	ErrorNetwork  ErrorCode = "network"
)

// ServiceError is returned by controller operations; Message is user-facing text.
type ServiceError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

// NewInvalidError reports an unknown key or an out-of-range value.
func NewInvalidError(msg string) error { return &ServiceError{Code: ErrorInvalid, Message: msg} }

// NewBlockedError reports a submit attempted while CanSubmit is false.
func NewBlockedError(msg string) error { return &ServiceError{Code: ErrorBlocked, Message: msg} }

// NewRejectedError carries the endpoint's rejection text.
func NewRejectedError(msg string) error { return &ServiceError{Code: ErrorRejected, Message: msg} }

// NewNetworkError wraps a transport failure or unreadable reply.
func NewNetworkError(msg string, cause error) error {
	return &ServiceError{Code: ErrorNetwork, Message: msg, Err: cause}
}

// AsServiceError unwraps err to a *ServiceError.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsCode reports whether err is a ServiceError with the given code.
func IsCode(err error, code ErrorCode) bool {
	se, ok := AsServiceError(err)
	return ok && se.Code == code
}

func trimmed(s string) string { return strings.TrimSpace(s) }
