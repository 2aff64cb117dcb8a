package services

import (
	"errors"
	"strings"

	"github.com/rdbo/nutrinow/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db        *gorm.DB
	nutrition *NutritionService
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db, nutrition: NewNutritionService(db)}
}

const foodSearchLimit = 50

type FoodServing struct {
	ID        uint             `json:"id"`
	Amount    float64          `json:"amount"`
	Unit      string           `json:"unit"`
	Nutrients []NutrientAmount `json:"nutrients"`
	Relative  *uint            `json:"relative"`
}

type FoodInfo struct {
	ID       uint          `json:"id"`
	Name     string        `json:"name"`
	Servings []FoodServing `json:"servings"`
}

// Search does a case-insensitive substring match over food names, ranked
// prefix > word-boundary > anywhere. "Chicken Breast" becomes the patterns
// "Chicken Breast%", "Chicken%Breast%" and "%Chicken%Breast%".
func (s *FoodService) Search(query string) ([]FoodInfo, error) {
	prefix := strings.TrimSpace(query) + "%"
	wordBoundary := strings.ReplaceAll(prefix, " ", "%")
	anywhere := "%" + wordBoundary

	var matches []models.Food
	err := s.db.Raw(
		"SELECT id, name FROM food WHERE LOWER(name) LIKE LOWER(?) "+
			"ORDER BY (CASE WHEN LOWER(name) LIKE LOWER(?) THEN 1 WHEN LOWER(name) LIKE LOWER(?) THEN 2 ELSE 3 END), id LIMIT ?",
		anywhere, prefix, wordBoundary, foodSearchLimit,
	).Scan(&matches).Error
	if err != nil {
		return nil, err
	}

	foods := make([]FoodInfo, 0, len(matches))
	for _, match := range matches {
		servings, err := s.foodServings(match.ID)
		if err != nil {
			// enrichment failure drops the entry, not the whole list
			continue
		}
		foods = append(foods, FoodInfo{ID: match.ID, Name: match.Name, Servings: servings})
	}
	return foods, nil
}

func (s *FoodService) GetFood(foodID uint) (*FoodInfo, error) {
	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	servings, err := s.foodServings(food.ID)
	if err != nil {
		return nil, err
	}
	return &FoodInfo{ID: food.ID, Name: food.Name, Servings: servings}, nil
}

// foodServings lists a food's servings with per-base-unit nutrients.
// Relative servings carry an empty list; their nutrition is resolved only
// when they are actually used in a meal.
func (s *FoodService) foodServings(foodID uint) ([]FoodServing, error) {
	var servings []models.Serving
	if err := s.db.Where("food_id = ?", foodID).Order("id").Find(&servings).Error; err != nil {
		return nil, err
	}

	out := make([]FoodServing, 0, len(servings))
	for _, serving := range servings {
		nutrients := []NutrientAmount{}
		if serving.RelativeID == nil {
			resolved, err := s.nutrition.BaseNutrients(&serving)
			if err != nil {
				continue
			}
			nutrients = resolved
		}
		out = append(out, FoodServing{
			ID:        serving.ID,
			Amount:    serving.Amount,
			Unit:      serving.Unit,
			Nutrients: nutrients,
			Relative:  serving.RelativeID,
		})
	}
	return out, nil
}

type FoodListEntry struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	ServingID     uint             `json:"serving_id"`
	ServingBase   float64          `json:"serving_base"`
	ServingAmount float64          `json:"serving_amount"`
	ServingUnit   string           `json:"serving_unit"`
	BaseNutrients []NutrientAmount `json:"base_nutrients"`
}

// ListFoods returns every food with its first serving, for browse UIs.
func (s *FoodService) ListFoods() ([]FoodListEntry, error) {
	var rows []struct {
		FoodID    uint
		Name      string
		ServingID uint
	}
	err := s.db.Raw(
		"SELECT food.id AS food_id, food.name AS name, MIN(serving.id) AS serving_id " +
			"FROM food JOIN serving ON serving.food_id = food.id GROUP BY food.id, food.name ORDER BY food.id",
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]FoodListEntry, 0, len(rows))
	for _, row := range rows {
		var serving models.Serving
		if err := s.db.First(&serving, row.ServingID).Error; err != nil {
			continue
		}
		nutrients, err := s.nutrition.BaseNutrients(&serving)
		if err != nil {
			continue
		}
		entries = append(entries, FoodListEntry{
			ID:            row.FoodID,
			Name:          row.Name,
			ServingID:     serving.ID,
			ServingBase:   serving.Amount,
			ServingAmount: serving.Amount,
			ServingUnit:   serving.Unit,
			BaseNutrients: nutrients,
		})
	}
	return entries, nil
}
