package services

import (
	"errors"

	"github.com/pathstarter/backend/internal/apperrors"
	"github.com/pathstarter/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		DB: db,
	}
}

// Register hashes the password and inserts the new user. Email uniqueness
// rides on the store constraint, so a concurrent duplicate registration
// fails cleanly as a conflict instead of racing a separate existence check.
func (s *UserService) Register(name, email, password string) (uint, error) {
	if name == "" || email == "" || password == "" {
		return 0, apperrors.Validation("All fields are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, apperrors.Internal("Password hashing failed", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, apperrors.Conflict("Email already in use")
		}
		return 0, apperrors.Internal("User registration failed", err)
	}
	return user.ID, nil
}

// Authenticate returns the user matching email+password. Unknown email and
// wrong password yield the same error so callers can't probe which failed.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("Email and password are required")
	}

	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, apperrors.Internal("Database error", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, apperrors.Internal("Database error", err)
	}
	return &user, nil
}
