package services

import "errors"

// Error messages are user-facing text carried in the response envelope.
var (
	ErrNotLoggedIn    = errors.New("User is not logged in (missing session_id)")
	ErrSessionInvalid = errors.New("Invalid or expired session (log in again)")
	ErrAuthFailed     = errors.New("User authentication failed (check your credentials)")
	ErrAccessDenied   = errors.New("Access denied (user cannot access the requested resource)")

	ErrEmailTaken        = errors.New("E-mail address is already registered")
	ErrDuplicationFailed = errors.New("Failed to duplicate diet (try again)")

	ErrUserNotFound        = errors.New("User account not found")
	ErrDietNotFound        = errors.New("Diet not found")
	ErrMealNotFound        = errors.New("Meal not found")
	ErrMealServingNotFound = errors.New("Meal serving not found")
	ErrServingNotFound     = errors.New("Food serving not found")
	ErrFoodNotFound        = errors.New("Food not found")

	ErrInvalidName      = errors.New("Invalid name (must be between 1 and 100 characters)")
	ErrInvalidEmail     = errors.New("Invalid e-mail address")
	ErrInvalidGender    = errors.New("Invalid gender (must be M or F)")
	ErrInvalidWeight    = errors.New("Invalid weight (must be positive)")
	ErrInvalidBirthdate = errors.New("Invalid birthdate (use YYYY-MM-DD, in the past)")
)
