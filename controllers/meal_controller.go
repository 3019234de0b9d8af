package controllers

import (
	"net/http"

	"daily-diet-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	Svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{Svc: svc}
}

func (h *MealController) ListMeals(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	meals, err := h.Svc.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal answers {"meal": null} for ids that do not exist or belong to
// another user; the two cases are indistinguishable to the caller.
func (h *MealController) GetMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := mealIDFromPath(c)
	if !ok {
		return
	}

	meal, err := h.Svc.Get(userID, mealID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (h *MealController) CreateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields, err := input.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.Svc.Create(userID, fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": meal.ID})
}

// UpdateMeal validates the body first, then applies a user-scoped update.
// A missing or other-owned id updates zero rows and still answers 200.
func (h *MealController) UpdateMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := mealIDFromPath(c)
	if !ok {
		return
	}

	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fields, err := input.Validate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Svc.Update(userID, mealID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (h *MealController) DeleteMeal(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	mealID, ok := mealIDFromPath(c)
	if !ok {
		return
	}

	if err := h.Svc.Delete(userID, mealID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MealController) GetSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	sum, err := h.Svc.Summary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": sum})
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (string, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}

// mealIDFromPath rejects ids that are not syntactically valid UUIDs before
// the store is touched.
func mealIDFromPath(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return "", false
	}
	return id, true
}
