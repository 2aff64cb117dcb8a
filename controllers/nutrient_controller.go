package controllers

import (
	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

func Nutrients(c *gin.Context) {
	nutrients, err := services.NewNutritionService(config.DB).ListNutrients()
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, gin.H{"nutrients": nutrients})
}
