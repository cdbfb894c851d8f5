package services

import (
	"errors"
	"time"

	"github.com/pathstarter/backend/internal/apperrors"
	"github.com/pathstarter/backend/internal/dtos"
	"github.com/pathstarter/backend/internal/models"
	"gorm.io/gorm"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

func (s *JobService) Create(req *dtos.JobCreationRequest) (uint, error) {
	if req.Title == "" || req.Company == "" || req.Location == "" || req.Description == "" {
		return 0, apperrors.Validation("Title, company, location, and description are required")
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		PostedAt:     time.Now(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return 0, apperrors.Internal("Failed to post job", err)
	}
	return job.ID, nil
}

// List returns every job, most recent first.
func (s *JobService) List() ([]models.Job, error) {
	jobs := make([]models.Job, 0)
	err := s.DB.Order("posted_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, apperrors.Internal("Database error", err)
	}
	return jobs, nil
}

func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Database error", err)
	}
	return &job, nil
}
