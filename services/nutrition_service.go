package services

import (
	"errors"

	"github.com/rdbo/nutrinow/models"

	"gorm.io/gorm"
)

// NutritionService resolves the nutrient content of food servings and the
// demographic default targets assigned to new diets.
type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

type NutrientAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// ResolveServingNutrients returns the nutrition contributed by
// consumedAmount of the given serving, expressed in the serving's unit.
//
// Absolute servings own their nutrient rows, scaled by
// consumedAmount / serving.Amount. A relative serving declares its amount as
// quantity-per-unit (e.g. one slice weighs 50 g) and borrows the rows of the
// serving it references, scaled by serving.Amount / referenced.Amount first.
func (s *NutritionService) ResolveServingNutrients(servingID uint, consumedAmount float64) ([]NutrientAmount, error) {
	var serving models.Serving
	if err := s.db.First(&serving, servingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServingNotFound
		}
		return nil, err
	}
	return s.resolve(&serving, consumedAmount)
}

// BaseNutrients returns per-base-unit display values, i.e. the nutrition of
// exactly one base quantity of the serving.
func (s *NutritionService) BaseNutrients(serving *models.Serving) ([]NutrientAmount, error) {
	return s.resolve(serving, serving.Amount)
}

func (s *NutritionService) resolve(serving *models.Serving, consumedAmount float64) ([]NutrientAmount, error) {
	sourceID := serving.ID
	factor := 1.0

	if serving.RelativeID != nil {
		var ref models.Serving
		if err := s.db.First(&ref, *serving.RelativeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// dangling reference
				return nil, ErrServingNotFound
			}
			return nil, err
		}
		sourceID = ref.ID
		if ref.Amount > 0 {
			factor = serving.Amount / ref.Amount
		}
	}

	if serving.Amount > 0 {
		factor *= consumedAmount / serving.Amount
	}

	var nutrients []NutrientAmount
	err := s.db.Table("serving_nutrient").
		Select("nutrient.name AS name, serving_nutrient.amount AS amount, nutrient.unit AS unit").
		Joins("JOIN nutrient ON nutrient.id = serving_nutrient.nutrient_id").
		Where("serving_nutrient.serving_id = ?", sourceID).
		Scan(&nutrients).Error
	if err != nil {
		return nil, err
	}

	for i := range nutrients {
		nutrients[i].Amount *= factor
	}
	return nutrients, nil
}

// DefaultTargets returns every intake rule matching the user's demographic.
// AgeMin is inclusive, AgeMax exclusive, nil AgeMax unbounded.
func (s *NutritionService) DefaultTargets(gender string, age int) ([]models.DefaultNutrientRule, error) {
	var rules []models.DefaultNutrientRule
	err := s.db.
		Where("gender = ? AND age_min <= ? AND (age_max IS NULL OR age_max > ?)", gender, age, age).
		Find(&rules).Error
	return rules, err
}

func (s *NutritionService) ListNutrients() ([]models.Nutrient, error) {
	var nutrients []models.Nutrient
	err := s.db.Order("id").Find(&nutrients).Error
	return nutrients, err
}
