package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/apperrors"
	"go.uber.org/zap"
)

// respondError translates a service error into its status code and the
// `{"error": ...}` payload. Causes of internal errors go to the log only.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	appErr := apperrors.AsError(err)

	fields := []zap.Field{
		zap.String("error_type", string(appErr.Type)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", appErr.HTTPStatus()),
	}

	switch appErr.Type {
	case apperrors.TypeInternal:
		logger.Error(appErr.Message, append(fields, zap.Error(appErr.Cause))...)
	case apperrors.TypeConflict:
		logger.Warn(appErr.Message, fields...)
	default:
		logger.Info(appErr.Message, fields...)
	}

	c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
}
