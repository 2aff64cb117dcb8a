package controllers

import (
	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/middlewares"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

// matches the session lifetime set by AuthService.Login
const sessionCookieMaxAge = 365 * 24 * 3600

type RegisterInput struct {
	Name      string  `form:"name" json:"name" binding:"required"`
	Birthdate string  `form:"birthdate" json:"birthdate" binding:"required"`
	Email     string  `form:"email" json:"email" binding:"required"`
	Password  string  `form:"password" json:"password" binding:"required"`
	Gender    string  `form:"gender" json:"gender" binding:"required"`
	Weight    float64 `form:"weight" json:"weight" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid registration data")
		return
	}

	err := services.NewAuthService(config.DB).Register(services.RegisterInput{
		Name:      input.Name,
		Birthdate: input.Birthdate,
		Email:     input.Email,
		Password:  input.Password,
		Gender:    input.Gender,
		Weight:    input.Weight,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respondOK(c, nil)
}

type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		respondBadRequest(c, "Invalid login data")
		return
	}

	sessionID, err := services.NewAuthService(config.DB).Login(input.Email, input.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.SetCookie(middlewares.SessionCookieName, sessionID, sessionCookieMaxAge, "/", "", false, true)
	respondOK(c, gin.H{"session_id": sessionID})
}

func Logout(c *gin.Context) {
	sessionID, err := c.Cookie(middlewares.SessionCookieName)
	if err == nil {
		if err := services.NewAuthService(config.DB).Logout(sessionID); err != nil {
			respondErr(c, err)
			return
		}
	}
	middlewares.RemoveSessionCookie(c)
	respondOK(c, nil)
}
