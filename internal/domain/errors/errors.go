package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCodeNotFound        = errors.New("verification code not found")
	ErrCodeExpired         = errors.New("verification code expired")
	ErrCodeMismatch        = errors.New("verification code mismatch")
	ErrEmailDeliveryFailed = errors.New("email delivery failed")
	ErrUpstreamTimeout     = errors.New("upstream timeout")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Error codes returned to clients
const (
	CodeValidation         = "ERR_VALIDATION"
	CodeNotFound           = "ERR_NOT_FOUND"
	CodeConflict           = "ERR_CONFLICT"
	CodeUnauthorized       = "ERR_UNAUTHORIZED"
	CodeForbidden          = "ERR_FORBIDDEN"
	CodeExpired            = "ERR_EXPIRED"
	CodeUpstream           = "ERR_UPSTREAM"
	CodeUpstreamTimeout    = "ERR_UPSTREAM_TIMEOUT"
	CodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	CodeInternal           = "ERR_INTERNAL"
)

// AppError carries an HTTP status alongside the wrapped cause
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message, ErrInvalidInput)
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

// Expired marks a time-bound resource as lapsed. Client-recoverable, so 400.
func Expired(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeExpired, message, ErrCodeExpired)
}

func UpstreamTimeout(message string) *AppError {
	return NewAppError(http.StatusRequestTimeout, CodeUpstreamTimeout, message, ErrUpstreamTimeout)
}

func Upstream(message string) *AppError {
	return NewAppError(http.StatusBadGateway, CodeUpstream, message, ErrUpstreamUnavailable)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}
