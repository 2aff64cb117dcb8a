package controllers

import (
	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

func Diets(c *gin.Context) {
	diets, err := services.NewDietService(config.DB).ListDiets(authedUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"diets": diets})
}

func DietNutrition(c *gin.Context) {
	dietID, ok := paramUint(c, "diet_id")
	if !ok {
		return
	}

	nutrition, err := services.NewDietService(config.DB).DietNutrition(authedUserID(c), dietID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"nutrition": nutrition})
}

type NewDietInput struct {
	DietName string `form:"diet_name" json:"diet_name" binding:"required"`
}

func NewDiet(c *gin.Context) {
	var input NewDietInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid diet name")
		return
	}

	if err := services.NewDietService(config.DB).CreateDiet(authedUserID(c), input.DietName); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type EditDietInput struct {
	DietID   uint   `form:"diet_id" json:"diet_id" binding:"required"`
	DietName string `form:"diet_name" json:"diet_name" binding:"required"`
}

func EditDiet(c *gin.Context) {
	var input EditDietInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid diet data")
		return
	}

	if err := services.NewDietService(config.DB).EditDiet(authedUserID(c), input.DietID, input.DietName); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type DeleteDietInput struct {
	DietID uint `form:"diet_id" json:"diet_id" binding:"required"`
}

func DeleteDiet(c *gin.Context) {
	var input DeleteDietInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid diet ID")
		return
	}

	if err := services.NewDietService(config.DB).DeleteDiet(authedUserID(c), input.DietID); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type DuplicateDietInput struct {
	DietID   uint   `form:"diet_id" json:"diet_id" binding:"required"`
	DietName string `form:"diet_name" json:"diet_name" binding:"required"`
}

func DuplicateDiet(c *gin.Context) {
	var input DuplicateDietInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid diet data")
		return
	}

	if err := services.NewDietService(config.DB).DuplicateDiet(authedUserID(c), input.DietID, input.DietName); err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}
