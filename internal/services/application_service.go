package services

import (
	"errors"
	"time"

	"github.com/pathstarter/backend/internal/apperrors"
	"github.com/pathstarter/backend/internal/models"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// Apply records one application per (user, job). The duplicate guard is the
// composite unique index, so two concurrent applies race down to a single
// insert plus one clean conflict.
func (s *ApplicationService) Apply(userID, jobID uint) (uint, error) {
	var job models.Job
	err := s.DB.Select("id").First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, apperrors.NotFound("Job not found")
	}
	if err != nil {
		return 0, apperrors.Internal("Database error", err)
	}

	application := &models.Application{
		UserID:    userID,
		JobID:     jobID,
		AppliedAt: time.Now(),
	}
	if err := s.DB.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.Conflict("You have already applied to this job")
		}
		return 0, apperrors.Internal("Failed to apply to job", err)
	}
	return application.ID, nil
}

// ListForUser returns the user's applications joined with the job columns
// the listing shows, most recent first.
func (s *ApplicationService) ListForUser(userID uint) ([]models.ApplicationWithJob, error) {
	rows := make([]models.ApplicationWithJob, 0)
	err := s.DB.Model(&models.Application{}).
		Select("applications.id, applications.user_id, applications.job_id, applications.applied_at, jobs.title, jobs.company, jobs.location").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.user_id = ?", userID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Internal("Database error", err)
	}
	return rows, nil
}
