package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "denance.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, translating domain errors to HTTP statuses
func Error(c *gin.Context, err error) {
	var tooSoon *domainerrors.TooSoonError
	if errors.As(err, &tooSoon) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"code":           http.StatusTooManyRequests,
			"message":        tooSoon.Error(),
			"hoursRemaining": tooSoon.HoursRemaining,
		})
		return
	}

	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message, // Backward compatibility
	})
}

// ErrorWithError sends an error response with a specific status and message
func ErrorWithError(c *gin.Context, status int, code int, message string) {
	c.JSON(status, gin.H{
		"code":    code,
		"message": message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return domainerrors.Unauthorized(err.Error())
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrCodeInUse),
		errors.Is(err, domainerrors.ErrInvalidViewEvent):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidAmount),
		errors.Is(err, domainerrors.ErrInsufficientBalance),
		errors.Is(err, domainerrors.ErrInvalidActivationCode),
		errors.Is(err, domainerrors.ErrInvalidCodeLength),
		errors.Is(err, domainerrors.ErrInvalidDestination):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrNoActivePaymentConfig):
		return domainerrors.NewAppError(http.StatusServiceUnavailable, err.Error(), err)
	}
	return domainerrors.InternalError(err)
}
