package controllers

import (
	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

func FoodSearch(c *gin.Context) {
	matches, err := services.NewFoodService(config.DB).Search(c.Param("food_name"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"matches": matches})
}

func Food(c *gin.Context) {
	foodID, ok := paramUint(c, "food_id")
	if !ok {
		return
	}

	food, err := services.NewFoodService(config.DB).GetFood(foodID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"food": food})
}

func Foods(c *gin.Context) {
	foods, err := services.NewFoodService(config.DB).ListFoods()
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"foods": foods})
}
