package services

import (
	"errors"

	"daily-diet-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealService is the access layer for meals. Every operation takes the
// owning user's id explicitly; no query leaves that scope.
type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// List returns every meal owned by userID in recorded (insertion) order,
// which is the order the summary's streak walks.
func (s *MealService) List(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", userID).
		Order("seq").
		Find(&meals).Error
	return meals, err
}

// Get looks up one meal scoped to userID. A missing or other-owned id
// yields (nil, nil), never a hint that the row exists.
func (s *MealService) Get(userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Create(userID string, fields MealFields) (*models.Meal, error) {
	meal := &models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        fields.Name,
		Description: fields.Description,
		IsOnDiet:    fields.IsOnDiet,
		Date:        fields.Date,
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// Update rewrites the meal if it exists and belongs to userID; otherwise it
// affects zero rows and still succeeds.
func (s *MealService) Update(userID, mealID string, fields MealFields) error {
	return s.db.
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]any{
			"name":        fields.Name,
			"description": fields.Description,
			"is_on_diet":  fields.IsOnDiet,
			"date":        fields.Date,
		}).Error
}

// Delete removes the meal if owned by userID; deleting a missing or
// other-owned id is a no-op.
func (s *MealService) Delete(userID, mealID string) error {
	return s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{}).Error
}

// Summary aggregates the user's meals in recorded order.
func (s *MealService) Summary(userID string) (Summary, error) {
	meals, err := s.List(userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(meals), nil
}
