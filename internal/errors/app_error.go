package errors

import (
	"errors"
	"net/http"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeBadRequest           = "BAD_REQUEST"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeInternal             = "INTERNAL_ERROR"
	ErrCodeStorage              = "STORAGE_ERROR"
	ErrCodeNetwork              = "NETWORK_ERROR"
	ErrCodeUpstream             = "UPSTREAM_ERROR"
	ErrCodeBackendNotConfigured = "BACKEND_NOT_CONFIGURED"
	ErrCodeSubmitInProgress     = "SUBMIT_IN_PROGRESS"
	ErrCodeTooManyRequests      = "TOO_MANY_REQUESTS"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func StorageError(message string) *AppError {
	return NewAppError(ErrCodeStorage, message, http.StatusInternalServerError)
}

// NetworkError is a connectivity failure talking to the backend; the caller may retry by hand.
func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, http.StatusServiceUnavailable)
}

// UpstreamError wraps a non-success backend response. Client errors keep the
// backend status, anything else is reported as a bad gateway.
func UpstreamError(upstreamStatus int, message string) *AppError {
	status := http.StatusBadGateway
	if upstreamStatus >= 400 && upstreamStatus < 500 {
		status = upstreamStatus
	}
	return NewAppError(ErrCodeUpstream, message, status)
}

func BackendNotConfiguredError(message string) *AppError {
	return NewAppError(ErrCodeBackendNotConfigured, message, http.StatusServiceUnavailable)
}

func SubmitInProgressError(message string) *AppError {
	return NewAppError(ErrCodeSubmitInProgress, message, http.StatusConflict)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// As and Is forward to the standard library so callers importing this package
// as "errors" keep them at hand.
func As(err error, target any) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}
