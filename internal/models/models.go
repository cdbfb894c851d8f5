package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"not null" json:"-"`
}

type Job struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Location    string `gorm:"not null" json:"location"`
	Description string `gorm:"type:text;not null" json:"description"`

	// Optional Fields
	Requirements string `json:"requirements,omitempty"`
	Salary       string `json:"salary,omitempty"`

	PostedAt time.Time `gorm:"index;not null" json:"posted_at"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// The composite unique index makes "one application per (user, job)"
	// a store-level guarantee rather than a check-then-insert.
	UserID uint `gorm:"not null;uniqueIndex:idx_user_job" json:"user_id"`
	JobID  uint `gorm:"not null;uniqueIndex:idx_user_job" json:"job_id"`

	// Association: GORM needs Preload() or an explicit join to fill this
	Job Job `json:"-"`

	AppliedAt time.Time `gorm:"index;not null" json:"applied_at"`
}

// ApplicationWithJob is one row of the applications listing: the
// application joined with the subset of job columns the UI shows.
type ApplicationWithJob struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	JobID     uint      `json:"job_id"`
	AppliedAt time.Time `json:"applied_at"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
}
