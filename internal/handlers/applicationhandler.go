package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/apperrors"
	"github.com/pathstarter/backend/internal/services"
	"go.uber.org/zap"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
	Logger             *zap.Logger
}

func NewApplicationHandler(a *services.ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		ApplicationService: a,
		Logger:             logger,
	}
}

// Apply is the POST /api/jobs/:id/apply endpoint (authenticated).
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, apperrors.NotFound("Job not found"))
		return
	}
	userID := c.GetUint(ctxKeyUserID)

	applicationID, err := h.ApplicationService.Apply(userID, jobID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Application submitted successfully",
		"applicationId": applicationID,
	})
}

// ListApplications is the GET /api/applications endpoint (authenticated).
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID := c.GetUint(ctxKeyUserID)

	applications, err := h.ApplicationService.ListForUser(userID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}
