package controllers

import (
	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

func User(c *gin.Context) {
	user, err := services.NewAuthService(config.DB).GetUser(authedUserID(c))
	if err != nil {
		respondErr(c, err)
		return
	}

	respondOK(c, gin.H{
		"name":      user.Name,
		"birthdate": user.Birthdate.Format("2006-01-02"),
		"gender":    user.Gender,
		"weight":    user.Weight,
	})
}
