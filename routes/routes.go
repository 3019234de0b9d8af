package routes

import (
	"daily-diet-backend/controllers"
	"daily-diet-backend/middlewares"
	"daily-diet-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	userSvc := services.NewUserService(db)
	mealSvc := services.NewMealService(db)

	userCtl := controllers.NewUserController(userSvc)
	mealCtl := controllers.NewMealController(mealSvc)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	// Public
	r.POST("/users", userCtl.CreateUser)

	// Session-scoped meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.SessionMiddleware(userSvc))
	{
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/summary", mealCtl.GetSummary)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.POST("", mealCtl.CreateMeal)
		meals.PUT("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	return r
}
