package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

// Every response carries the err field: empty on success, a user-facing
// message on failure.

func respondOK(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["err"] = ""
	c.JSON(http.StatusOK, data)
}

func respondErr(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error (try again)"
	}
	c.JSON(status, gin.H{"err": msg})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"err": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn),
		errors.Is(err, services.ErrSessionInvalid),
		errors.Is(err, services.ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrDietNotFound),
		errors.Is(err, services.ErrMealNotFound),
		errors.Is(err, services.ErrMealServingNotFound),
		errors.Is(err, services.ErrServingNotFound),
		errors.Is(err, services.ErrFoodNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidGender),
		errors.Is(err, services.ErrInvalidWeight),
		errors.Is(err, services.ErrInvalidBirthdate):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDuplicationFailed):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(value), true
}

func authedUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}
