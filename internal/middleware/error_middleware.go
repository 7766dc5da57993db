package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	"github.com/campuscore/campuscore/internal/pkg/logger"
)

// HandleAPIError maps a service error to the standard error envelope and
// writes it. Unknown errors become a 500 with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	status, code := classifyError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		message = "an internal error occurred"
	}

	c.JSON(status, dto.NewErrorResponse(code, message))
}

func classifyError(err error) (int, dto.ErrorCode) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized

	case errors.Is(err, apperrors.ErrAccountSuspended),
		errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden

	case errors.Is(err, apperrors.ErrCooldownActive):
		return http.StatusTooManyRequests, dto.ErrorCodeTooManyRequests

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrTenantNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrEnrollmentNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrOfferingNotFound),
		errors.Is(err, apperrors.ErrPeriodNotFound),
		errors.Is(err, apperrors.ErrTuitionNotFound),
		errors.Is(err, apperrors.ErrTranscriptNotFound),
		errors.Is(err, apperrors.ErrTicketNotFound):
		return http.StatusNotFound, dto.ErrorCodeNotFound

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrTenantCodeExists),
		errors.Is(err, apperrors.ErrIndexNumberExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled):
		return http.StatusConflict, dto.ErrorCodeConflict

	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed

	case errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrSelfDelete),
		errors.Is(err, apperrors.ErrTenantIDRequired),
		errors.Is(err, apperrors.ErrTenantQueryRequired):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest
	}

	return http.StatusInternalServerError, dto.ErrorCodeInternalError
}

// HandleValidationError writes a 400 for gin binding failures.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrorCodeValidationFailed, err.Error()))
}
