package services

import (
	"errors"

	"github.com/rdbo/nutrinow/models"

	"gorm.io/gorm"
)

// Ownership resolution for the diet → meal → meal_serving chain. A mismatch
// between the resolved owner and the authenticated user is an authorization
// failure, not a not-found.

func dietOwnerID(db *gorm.DB, dietID uint) (uint, error) {
	var diet models.Diet
	if err := db.Select("id", "user_id").First(&diet, dietID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrDietNotFound
		}
		return 0, err
	}
	return diet.UserID, nil
}

func mealOwnerID(db *gorm.DB, mealID uint) (uint, error) {
	var row struct{ UserID uint }
	err := db.Table("meal").
		Select("diet.user_id AS user_id").
		Joins("JOIN diet ON diet.id = meal.diet_id").
		Where("meal.id = ?", mealID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMealNotFound
		}
		return 0, err
	}
	return row.UserID, nil
}

func mealServingOwnerID(db *gorm.DB, mealServingID uint) (uint, error) {
	var row struct{ UserID uint }
	err := db.Table("meal_serving").
		Select("diet.user_id AS user_id").
		Joins("JOIN meal ON meal.id = meal_serving.meal_id").
		Joins("JOIN diet ON diet.id = meal.diet_id").
		Where("meal_serving.id = ?", mealServingID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMealServingNotFound
		}
		return 0, err
	}
	return row.UserID, nil
}
