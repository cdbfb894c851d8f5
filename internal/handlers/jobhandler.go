package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathstarter/backend/internal/apperrors"
	"github.com/pathstarter/backend/internal/dtos"
	"github.com/pathstarter/backend/internal/services"
	"go.uber.org/zap"
)

type JobHandler struct {
	JobService *services.JobService
	Logger     *zap.Logger
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		JobService: j,
		Logger:     logger,
	}
}

// CreateJob is the POST /api/jobs endpoint (authenticated).
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	jobID, err := h.JobService.Create(&req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"jobId":   jobID,
	})
}

// ListJobs is the GET /api/jobs endpoint, most recent first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob is the GET /api/jobs/:id endpoint.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, h.Logger, apperrors.NotFound("Job not found"))
		return
	}

	job, err := h.JobService.Get(jobID)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
