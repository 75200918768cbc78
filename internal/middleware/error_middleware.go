package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasb/schoolhub/internal/app/models/dto"
	"github.com/lucasb/schoolhub/internal/pkg/apperrors"
	"github.com/lucasb/schoolhub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP responses.
//
// A missing reference is the client's fault but not a malformed request,
// so it maps to 422 rather than 400. Constraint violations map to 400.
// Storage failures and integrity errors are server-side problems and
// always surface as 500 with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrReferenceNotFound):
		c.JSON(http.StatusUnprocessableEntity, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeReferenceNotFound, err.Error()),
		})
	case errors.Is(err, apperrors.ErrConstraintViolation):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeConstraintViolation, err.Error()),
		})
	case errors.Is(err, apperrors.ErrDataIntegrity):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Data integrity error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeDataIntegrity, "Stored data is inconsistent"),
		})
	case errors.Is(err, apperrors.ErrStorageFailure):
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage failure")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeStorageFailure, "Storage operation failed"),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
