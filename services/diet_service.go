package services

import (
	"log"

	"github.com/rdbo/nutrinow/models"
	"github.com/rdbo/nutrinow/utils"

	"gorm.io/gorm"
)

type DietService struct {
	db        *gorm.DB
	nutrition *NutritionService
}

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db, nutrition: NewNutritionService(db)}
}

type DietInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type DietNutrientInfo struct {
	Name      string   `json:"name"`
	MinAmount *float64 `json:"min_amount"`
	MaxAmount *float64 `json:"max_amount"`
	Unit      string   `json:"unit"`
	Relative  bool     `json:"relative"`
}

func (s *DietService) ListDiets(userID uint) ([]DietInfo, error) {
	var diets []DietInfo
	err := s.db.Model(&models.Diet{}).
		Select("id, name").
		Where("user_id = ?", userID).
		Order("id").
		Scan(&diets).Error
	return diets, err
}

func (s *DietService) DietNutrition(userID, dietID uint) ([]DietNutrientInfo, error) {
	owner, err := dietOwnerID(s.db, dietID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrAccessDenied
	}

	var nutrition []DietNutrientInfo
	err = s.db.Table("diet_nutrition").
		Select("nutrient.name AS name, diet_nutrition.min_intake AS min_amount, diet_nutrition.max_intake AS max_amount, nutrient.unit AS unit, diet_nutrition.relative AS relative").
		Joins("JOIN nutrient ON nutrient.id = diet_nutrition.nutrient_id").
		Where("diet_nutrition.diet_id = ?", dietID).
		Scan(&nutrition).Error
	return nutrition, err
}

// CreateDiet adds a diet and seeds its targets from the demographic
// default-intake rules, atomically.
func (s *DietService) CreateDiet(userID uint, name string) error {
	var user models.UserAccount
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	rules, err := s.nutrition.DefaultTargets(user.Gender, utils.Age(user.Birthdate))
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		diet := models.Diet{UserID: userID, Name: name}
		if err := tx.Create(&diet).Error; err != nil {
			return err
		}

		if len(rules) == 0 {
			return nil
		}
		targets := make([]models.DietNutrient, 0, len(rules))
		for _, rule := range rules {
			targets = append(targets, models.DietNutrient{
				DietID:     diet.ID,
				NutrientID: rule.NutrientID,
				MinIntake:  rule.MinIntake,
				MaxIntake:  rule.MaxIntake,
				Relative:   rule.Relative,
			})
		}
		return tx.Create(&targets).Error
	})
}

func (s *DietService) EditDiet(userID, dietID uint, name string) error {
	owner, err := dietOwnerID(s.db, dietID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}
	return s.db.Model(&models.Diet{}).Where("id = ?", dietID).Update("name", name).Error
}

// DeleteDiet removes a diet and everything hanging off it in one transaction.
func (s *DietService) DeleteDiet(userID, dietID uint) error {
	owner, err := dietOwnerID(s.db, dietID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM meal_serving WHERE meal_id IN (SELECT id FROM meal WHERE diet_id = ?)", dietID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Meal{}, "diet_id = ?", dietID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.DietNutrient{}, "diet_id = ?", dietID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Diet{}, dietID).Error
	})
}

// DuplicateDiet deep-copies a diet (targets, meals, meal servings) under a
// new name. The new diet and its nutrition targets must copy cleanly; a meal
// that fails to copy is skipped and the rest are kept.
func (s *DietService) DuplicateDiet(userID, dietID uint, name string) error {
	owner, err := dietOwnerID(s.db, dietID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		newDiet := models.Diet{UserID: userID, Name: name}
		if err := tx.Create(&newDiet).Error; err != nil {
			return ErrDuplicationFailed
		}

		var targets []models.DietNutrient
		if err := tx.Where("diet_id = ?", dietID).Find(&targets).Error; err != nil {
			return ErrDuplicationFailed
		}
		for i := range targets {
			targets[i].ID = 0
			targets[i].DietID = newDiet.ID
		}
		if len(targets) > 0 {
			if err := tx.Create(&targets).Error; err != nil {
				return ErrDuplicationFailed
			}
		}

		var meals []models.Meal
		if err := tx.Where("diet_id = ?", dietID).Order("id").Find(&meals).Error; err != nil {
			return ErrDuplicationFailed
		}
		for _, meal := range meals {
			tx.SavePoint("meal_copy")
			if err := s.copyMeal(tx, meal, newDiet.ID); err != nil {
				log.Printf("duplicate diet %d: skipping meal %q: %v", dietID, meal.Name, err)
				tx.RollbackTo("meal_copy")
			}
		}
		return nil
	})
}

func (s *DietService) copyMeal(tx *gorm.DB, meal models.Meal, newDietID uint) error {
	newMeal := models.Meal{DietID: newDietID, Name: meal.Name}
	if err := tx.Create(&newMeal).Error; err != nil {
		return err
	}

	var servings []models.MealServing
	if err := tx.Where("meal_id = ?", meal.ID).Find(&servings).Error; err != nil {
		return err
	}
	for i := range servings {
		servings[i].ID = 0
		servings[i].MealID = newMeal.ID
	}
	if len(servings) == 0 {
		return nil
	}
	return tx.Create(&servings).Error
}
