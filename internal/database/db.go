package database

import (
	"fmt"

	"github.com/pathstarter/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the store and runs migrations. Failure here is fatal to
// startup, so callers are expected to bail on error.
func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError surfaces unique violations as gorm.ErrDuplicatedKey,
	// which the services turn into conflict responses.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables if they don't exist. Safe to run against an
// already-initialized store.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{})
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
