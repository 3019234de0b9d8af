package services

import "daily-diet-backend/models"

// Summary aggregates a user's meal history.
type Summary struct {
	TotalMeals         int `json:"totalMeals"`
	TotalMealsOnDiet   int `json:"totalMealsOnDiet"`
	TotalMealsOffDiet  int `json:"totalMealsOffDiet"`
	BestOnDietSequence int `json:"bestOnDietSequence"`
}

// Summarize counts meals and the longest run of consecutive on-diet meals.
// The streak follows the order meals are given in (recorded order); meals
// are not re-sorted by date.
func Summarize(meals []models.Meal) Summary {
	var sum Summary
	current := 0
	for _, meal := range meals {
		sum.TotalMeals++
		if meal.IsOnDiet {
			sum.TotalMealsOnDiet++
			current++
			if current > sum.BestOnDietSequence {
				sum.BestOnDietSequence = current
			}
		} else {
			sum.TotalMealsOffDiet++
			current = 0
		}
	}
	return sum
}
