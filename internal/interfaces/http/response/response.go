package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "muza-life.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, translating domain sentinels into their
// HTTP shape
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(401, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("forbidden")
	case errors.Is(err, domainerrors.ErrCodeNotFound):
		// all verify failures are client-recoverable 400s; 404 would imply
		// a wrong endpoint rather than a missing code
		return domainerrors.NewAppError(400, domainerrors.CodeNotFound, "verification code not found", err)
	case errors.Is(err, domainerrors.ErrCodeExpired):
		return domainerrors.Expired("verification code expired")
	case errors.Is(err, domainerrors.ErrCodeMismatch):
		return domainerrors.BadRequest("verification code mismatch")
	case errors.Is(err, domainerrors.ErrEmailDeliveryFailed):
		return domainerrors.Upstream("failed to deliver email")
	case errors.Is(err, domainerrors.ErrUpstreamTimeout):
		return domainerrors.UpstreamTimeout("upstream request timed out")
	case errors.Is(err, domainerrors.ErrUpstreamUnavailable):
		return domainerrors.Upstream("upstream unavailable")
	default:
		return domainerrors.InternalError(err)
	}
}
