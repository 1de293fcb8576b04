package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors
var (
	ErrNotFound              = errors.New("resource not found")
	ErrAlreadyExists         = errors.New("resource already exists")
	ErrInvalidInput          = errors.New("invalid input")
	ErrBadRequest            = errors.New("bad request")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTokenExpired          = errors.New("token expired")
	ErrInvalidAmount         = errors.New("amount outside the allowed range")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInvalidActivationCode = errors.New("invalid activation code")
	ErrInvalidCodeLength     = errors.New("activation code must be exactly 8 characters")
	ErrCodeInUse             = errors.New("activation code already in use")
	ErrInvalidDestination    = errors.New("invalid withdrawal destination")
	ErrInvalidViewEvent      = errors.New("event not allowed in current view")
	ErrNoActivePaymentConfig = errors.New("no active payment configuration")
)

// TooSoonError is returned when a refresh is claimed before the 24h gate has
// elapsed. HoursRemaining is ceil(24 - elapsedHours) and is always >= 1.
type TooSoonError struct {
	HoursRemaining int
}

func (e *TooSoonError) Error() string {
	return fmt.Sprintf("refresh available in %d hours", e.HoursRemaining)
}

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    int    `json:"code"`
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
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrAlreadyExists)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}

// NewError creates a new error with a custom message wrapping an existing error
func NewError(message string, err error) error {
	return &AppError{
		Status:  http.StatusBadRequest,
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}
