package services

import (
	"errors"

	"daily-diet-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserExists = errors.New("user already exists")

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Register creates a user bound to the given session token.
func (s *UserService) Register(name, email, sessionID string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUserExists
	}

	user := &models.User{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Name:      name,
		Email:     email,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindBySession resolves a session token to its user.
// An unknown token yields (nil, nil), not an error.
func (s *UserService) FindBySession(sessionID string) (*models.User, error) {
	var user models.User
	err := s.db.Where("session_id = ?", sessionID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
