package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
	"github.com/temidayo/servecorps/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the API error envelope. Every
// controller funnels its service failures through here so the status code
// and error code stay consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error:     dto.NewValidationErrorDetail(verr),
			Timestamp: time.Now(),
		})
		return
	}

	var terr *apperrors.TransitionError
	if errors.As(err, &terr) {
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeInvalidTransition, terr.Error()),
			Timestamp: time.Now(),
		})
		return
	}

	switch {
	case apperrors.Is(err, apperrors.ErrRosterRowNotFound,
		apperrors.ErrGraduateNotFound,
		apperrors.ErrStaffRequestNotFound,
		apperrors.ErrZoneNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, err.Error())

	case errors.Is(err, apperrors.ErrAlreadyClaimed):
		respond(c, http.StatusConflict, dto.ErrorCodeAlreadyClaimed, "This record has already been taken")

	case errors.Is(err, apperrors.ErrInvalidTransition):
		respond(c, http.StatusConflict, dto.ErrorCodeInvalidTransition, "Invalid status transition")

	case apperrors.Is(err, apperrors.ErrDepartmentNotAssigned, apperrors.ErrServiceNotStarted):
		respond(c, http.StatusConflict, dto.ErrorCodeInvalidTransition, err.Error())

	case errors.Is(err, apperrors.ErrOverfulfilled):
		respond(c, http.StatusConflict, dto.ErrorCodeOverfulfilled, "Staff request is already fully fulfilled")

	case errors.Is(err, apperrors.ErrNothingFulfilled):
		respond(c, http.StatusConflict, dto.ErrorCodeNothingFulfilled, "Staff request has no fulfilled assignments")

	case errors.Is(err, apperrors.ErrRequestNotOpen):
		respond(c, http.StatusConflict, dto.ErrorCodeRequestNotOpen, "Staff request is not open")

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed")

	case errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Bad request")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")

	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Account is disabled")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
