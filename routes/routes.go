package routes

import (
	"github.com/rdbo/nutrinow/controllers"
	"github.com/rdbo/nutrinow/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public routes; credential endpoints are rate limited per IP.
	authLimit := middlewares.RateLimit(1, 5)
	api.POST("/register", authLimit, controllers.Register)
	api.POST("/login", authLimit, controllers.Login)
	api.GET("/food_search/:food_name", controllers.FoodSearch)
	api.GET("/food/:food_id", controllers.Food)
	api.GET("/foods", controllers.Foods)
	api.GET("/nutrients", controllers.Nutrients)

	// Session-protected routes
	auth := api.Group("")
	auth.Use(middlewares.SessionAuth())
	{
		auth.POST("/logout", controllers.Logout)
		auth.GET("/user", controllers.User)
		auth.GET("/diets", controllers.Diets)
		auth.GET("/diet_nutrition/:diet_id", controllers.DietNutrition)
		auth.POST("/new_diet", controllers.NewDiet)
		auth.POST("/edit_diet", controllers.EditDiet)
		auth.POST("/delete_diet", controllers.DeleteDiet)
		auth.POST("/duplicate_diet", controllers.DuplicateDiet)
		auth.GET("/meals/:diet_id", controllers.Meals)
		auth.POST("/add_meal", controllers.AddMeal)
		auth.POST("/delete_meal", controllers.DeleteMeal)
		auth.POST("/add_meal_serving", controllers.AddMealServing)
		auth.POST("/edit_meal_serving", controllers.EditMealServing)
		auth.POST("/delete_meal_serving", controllers.DeleteMealServing)
	}

	return r
}
