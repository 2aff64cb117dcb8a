package controllers

import (
	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

func Meals(c *gin.Context) {
	dietID, ok := paramUint(c, "diet_id")
	if !ok {
		return
	}

	meals, err := services.NewMealService(config.DB).ListMeals(authedUserID(c), dietID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"meals": meals})
}

type AddMealInput struct {
	DietID   uint   `form:"diet_id" json:"diet_id" binding:"required"`
	MealName string `form:"meal_name" json:"meal_name" binding:"required"`
}

func AddMeal(c *gin.Context) {
	var input AddMealInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid meal data")
		return
	}

	meal, err := services.NewMealService(config.DB).AddMeal(authedUserID(c), input.DietID, input.MealName)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"meal": meal})
}

type DeleteMealInput struct {
	MealID uint `form:"meal_id" json:"meal_id" binding:"required"`
}

func DeleteMeal(c *gin.Context) {
	var input DeleteMealInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid meal ID")
		return
	}

	if err := services.NewMealService(config.DB).DeleteMeal(authedUserID(c), input.MealID); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type AddMealServingInput struct {
	MealID    uint    `form:"meal_id" json:"meal_id" binding:"required"`
	ServingID uint    `form:"serving_id" json:"serving_id" binding:"required"`
	Amount    float64 `form:"amount" json:"amount" binding:"required"`
}

func AddMealServing(c *gin.Context) {
	var input AddMealServingInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid meal serving data")
		return
	}

	err := services.NewMealService(config.DB).AddMealServing(authedUserID(c), input.MealID, input.ServingID, input.Amount)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type EditMealServingInput struct {
	MealServingID uint    `form:"meal_serving_id" json:"meal_serving_id" binding:"required"`
	ServingID     uint    `form:"serving_id" json:"serving_id" binding:"required"`
	Amount        float64 `form:"amount" json:"amount" binding:"required"`
}

func EditMealServing(c *gin.Context) {
	var input EditMealServingInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid meal serving data")
		return
	}

	err := services.NewMealService(config.DB).EditMealServing(authedUserID(c), input.MealServingID, input.ServingID, input.Amount)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type DeleteMealServingInput struct {
	MealServingID uint `form:"meal_serving_id" json:"meal_serving_id" binding:"required"`
}

func DeleteMealServing(c *gin.Context) {
	var input DeleteMealServingInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid meal serving ID")
		return
	}

	if err := services.NewMealService(config.DB).DeleteMealServing(authedUserID(c), input.MealServingID); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}
