package services

import (
	"errors"

	"github.com/rdbo/nutrinow/models"

	"gorm.io/gorm"
)

type MealService struct {
	db        *gorm.DB
	nutrition *NutritionService
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db, nutrition: NewNutritionService(db)}
}

type MealFoodInfo struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	MealServingID uint             `json:"meal_serving_id"`
	ServingID     uint             `json:"serving_id"`
	ServingBase   float64          `json:"serving_base"`
	ServingAmount float64          `json:"serving_amount"`
	ServingUnit   string           `json:"serving_unit"`
	BaseNutrients []NutrientAmount `json:"base_nutrients"`
}

type MealInfo struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Foods []MealFoodInfo `json:"foods"`
}

// ListMeals returns the meals of a diet with each food's per-base-unit
// nutrition attached. Foods whose nutrients cannot be resolved are dropped
// from that meal rather than failing the listing.
func (s *MealService) ListMeals(userID, dietID uint) ([]MealInfo, error) {
	owner, err := dietOwnerID(s.db, dietID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrAccessDenied
	}

	var meals []models.Meal
	if err := s.db.Where("diet_id = ?", dietID).Order("id").Find(&meals).Error; err != nil {
		return nil, err
	}

	infos := make([]MealInfo, 0, len(meals))
	for _, meal := range meals {
		foods, err := s.mealFoods(meal.ID)
		if err != nil {
			continue
		}
		infos = append(infos, MealInfo{ID: meal.ID, Name: meal.Name, Foods: foods})
	}
	return infos, nil
}

type mealFoodRow struct {
	ID            uint
	Name          string
	MealServingID uint
	ServingID     uint
	ServingBase   float64
	ServingAmount float64
	ServingUnit   string
	Relative      *uint
}

func (s *MealService) mealFoods(mealID uint) ([]MealFoodInfo, error) {
	var rows []mealFoodRow
	err := s.db.Table("meal_serving").
		Select("food.id AS id, food.name AS name, meal_serving.id AS meal_serving_id, serving.id AS serving_id, serving.amount AS serving_base, meal_serving.amount AS serving_amount, serving.unit AS serving_unit, serving.relative AS relative").
		Joins("JOIN serving ON serving.id = meal_serving.serving_id").
		Joins("JOIN food ON food.id = serving.food_id").
		Where("meal_serving.meal_id = ?", mealID).
		Order("meal_serving.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	foods := make([]MealFoodInfo, 0, len(rows))
	for _, row := range rows {
		serving := models.Serving{
			ID:         row.ServingID,
			Amount:     row.ServingBase,
			Unit:       row.ServingUnit,
			RelativeID: row.Relative,
		}
		nutrients, err := s.nutrition.BaseNutrients(&serving)
		if err != nil {
			// skip this food, keep the rest
			continue
		}

		base := row.ServingBase
		if row.Relative != nil {
			// a relative serving is displayed per single unit
			base = 1.0
		}

		foods = append(foods, MealFoodInfo{
			ID:            row.ID,
			Name:          row.Name,
			MealServingID: row.MealServingID,
			ServingID:     row.ServingID,
			ServingBase:   base,
			ServingAmount: row.ServingAmount,
			ServingUnit:   row.ServingUnit,
			BaseNutrients: nutrients,
		})
	}
	return foods, nil
}

func (s *MealService) AddMeal(userID, dietID uint, name string) (*MealInfo, error) {
	owner, err := dietOwnerID(s.db, dietID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		return nil, ErrAccessDenied
	}

	meal := models.Meal{DietID: dietID, Name: name}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &MealInfo{ID: meal.ID, Name: meal.Name, Foods: []MealFoodInfo{}}, nil
}

func (s *MealService) DeleteMeal(userID, mealID uint) error {
	owner, err := mealOwnerID(s.db, mealID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MealServing{}, "meal_id = ?", mealID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, mealID).Error
	})
}

func (s *MealService) AddMealServing(userID, mealID, servingID uint, amount float64) error {
	owner, err := mealOwnerID(s.db, mealID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}

	if err := s.requireServing(servingID); err != nil {
		return err
	}
	return s.db.Create(&models.MealServing{MealID: mealID, ServingID: servingID, Amount: amount}).Error
}

func (s *MealService) EditMealServing(userID, mealServingID, servingID uint, amount float64) error {
	owner, err := mealServingOwnerID(s.db, mealServingID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}

	if err := s.requireServing(servingID); err != nil {
		return err
	}
	return s.db.Model(&models.MealServing{}).
		Where("id = ?", mealServingID).
		Updates(map[string]interface{}{"serving_id": servingID, "amount": amount}).Error
}

func (s *MealService) DeleteMealServing(userID, mealServingID uint) error {
	owner, err := mealServingOwnerID(s.db, mealServingID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrAccessDenied
	}
	return s.db.Delete(&models.MealServing{}, mealServingID).Error
}

func (s *MealService) requireServing(servingID uint) error {
	var serving models.Serving
	if err := s.db.Select("id").First(&serving, servingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServingNotFound
		}
		return err
	}
	return nil
}
