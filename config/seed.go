package config

import (
	"fmt"

	"github.com/rdbo/nutrinow/models"

	"gorm.io/gorm"
)

// Daily dietary intake estimates for teens and adults.
// Main source (consumer fact sheets): https://ods.od.nih.gov

var nutrientSeeds = []models.Nutrient{
	{Name: "Calories", Unit: "kcal"},
	{Name: "Protein", Unit: "g"},
	{Name: "Carbohydrates", Unit: "g"},
	{Name: "Fats", Unit: "g"},
	{Name: "Sugars", Unit: "g"},
	{Name: "Fiber", Unit: "g"},
	{Name: "Saturated Fat", Unit: "g"},
	{Name: "Unsaturated Fat", Unit: "g"},
	{Name: "Trans Fat", Unit: "g"},
	{Name: "Vitamin A", Unit: "µg"},
	{Name: "Vitamin B1", Unit: "mg"},
	{Name: "Vitamin B2", Unit: "mg"},
	{Name: "Vitamin B3", Unit: "mg"},
	{Name: "Vitamin B5", Unit: "mg"},
	{Name: "Vitamin B6", Unit: "mg"},
	{Name: "Vitamin B7", Unit: "µg"},
	{Name: "Vitamin B9", Unit: "µg"},
	{Name: "Vitamin B12", Unit: "µg"},
	{Name: "Vitamin C", Unit: "mg"},
	{Name: "Vitamin D", Unit: "µg"},
	{Name: "Vitamin E", Unit: "mg"},
	{Name: "Vitamin K", Unit: "µg"},
	{Name: "Calcium", Unit: "mg"},
	{Name: "Iron", Unit: "mg"},
	{Name: "Magnesium", Unit: "mg"},
	{Name: "Phosphorus", Unit: "mg"},
	{Name: "Potassium", Unit: "mg"},
	{Name: "Sodium", Unit: "mg"},
	{Name: "Zinc", Unit: "mg"},
	{Name: "Copper", Unit: "µg"},
	{Name: "Manganese", Unit: "µg"},
	{Name: "Selenium", Unit: "µg"},
	{Name: "Water", Unit: "ml"},
}

type ruleSeed struct {
	Nutrient string
	Gender   string
	AgeMin   int
	AgeMax   *int
	Min      *float64
	Max      *float64
	Relative bool
}

func f(v float64) *float64 { return &v }
func age(v int) *int       { return &v }

// bothGenders expands one band into an M and an F rule.
func bothGenders(nutrient string, ageMin int, ageMax *int, min, max *float64, relative bool) []ruleSeed {
	return []ruleSeed{
		{nutrient, "M", ageMin, ageMax, min, max, relative},
		{nutrient, "F", ageMin, ageMax, min, max, relative},
	}
}

func defaultRuleSeeds() []ruleSeed {
	var rules []ruleSeed

	// Relative targets are per kg of body weight.
	rules = append(rules, bothGenders("Protein", 0, nil, f(1.0), nil, true)...)
	rules = append(rules, bothGenders("Carbohydrates", 0, nil, f(2.5), nil, true)...)
	rules = append(rules, bothGenders("Fats", 0, nil, f(1.0), nil, true)...)
	rules = append(rules, bothGenders("Water", 0, nil, f(33.0), nil, true)...)

	rules = append(rules, bothGenders("Sugars", 0, nil, f(0.0), f(30.0), false)...)
	rules = append(rules, bothGenders("Saturated Fat", 0, nil, f(10.0), nil, false)...)
	rules = append(rules, bothGenders("Unsaturated Fat", 0, nil, f(20.0), nil, false)...)
	rules = append(rules, bothGenders("Trans Fat", 0, nil, f(2.0), nil, false)...)
	rules = append(rules, bothGenders("Vitamin B5", 0, nil, f(5.0), nil, false)...)
	rules = append(rules, bothGenders("Vitamin B6", 0, nil, f(1.3), nil, false)...)
	rules = append(rules, bothGenders("Vitamin B9", 0, nil, f(400.0), nil, false)...)
	rules = append(rules, bothGenders("Vitamin B12", 0, nil, f(2.4), nil, false)...)
	rules = append(rules, bothGenders("Vitamin D", 0, nil, f(15.0), nil, false)...)
	rules = append(rules, bothGenders("Vitamin E", 0, nil, f(15.0), nil, false)...)
	rules = append(rules, bothGenders("Sodium", 0, nil, f(1500.0), nil, false)...)
	rules = append(rules, bothGenders("Copper", 0, nil, f(900.0), nil, false)...)
	rules = append(rules, bothGenders("Selenium", 0, nil, f(55.0), nil, false)...)

	rules = append(rules,
		ruleSeed{"Fiber", "M", 0, nil, f(38.0), nil, false},
		ruleSeed{"Fiber", "F", 0, nil, f(25.0), nil, false},
		ruleSeed{"Vitamin B1", "M", 0, nil, f(1.2), nil, false},
		ruleSeed{"Vitamin B1", "F", 0, nil, f(1.1), nil, false},
		ruleSeed{"Vitamin B2", "M", 0, nil, f(1.3), nil, false},
		ruleSeed{"Vitamin B2", "F", 0, nil, f(1.1), nil, false},
		ruleSeed{"Vitamin B3", "M", 0, nil, f(16.0), nil, false},
		ruleSeed{"Vitamin B3", "F", 0, nil, f(14.0), nil, false},
		ruleSeed{"Zinc", "M", 0, nil, f(11.0), nil, false},
		ruleSeed{"Zinc", "F", 0, nil, f(8.0), nil, false},
		ruleSeed{"Manganese", "M", 0, nil, f(400.0), nil, false},
		ruleSeed{"Manganese", "F", 0, nil, f(310.0), nil, false},
		ruleSeed{"Magnesium", "M", 0, nil, f(410.0), nil, false},
		ruleSeed{"Magnesium", "F", 0, age(19), f(360.0), nil, false},
		ruleSeed{"Magnesium", "F", 19, nil, f(310.0), nil, false},
	)

	// Age-banded values. Bands are inclusive-exclusive.
	rules = append(rules, bothGenders("Vitamin A", 0, age(18), f(600.0), nil, false)...)
	rules = append(rules,
		ruleSeed{"Vitamin A", "M", 18, nil, f(900.0), nil, false},
		ruleSeed{"Vitamin A", "F", 18, nil, f(700.0), nil, false},
	)
	rules = append(rules, bothGenders("Vitamin B7", 0, age(19), f(25.0), nil, false)...)
	rules = append(rules, bothGenders("Vitamin B7", 19, nil, f(3.0), nil, false)...)
	rules = append(rules,
		ruleSeed{"Vitamin C", "M", 0, age(19), f(75.0), nil, false},
		ruleSeed{"Vitamin C", "M", 19, nil, f(90.0), nil, false},
		ruleSeed{"Vitamin C", "F", 0, age(19), f(65.0), nil, false},
		ruleSeed{"Vitamin C", "F", 19, nil, f(75.0), nil, false},
	)
	rules = append(rules, bothGenders("Vitamin K", 0, age(19), f(75.0), nil, false)...)
	rules = append(rules,
		ruleSeed{"Vitamin K", "M", 19, nil, f(120.0), nil, false},
		ruleSeed{"Vitamin K", "F", 19, nil, f(90.0), nil, false},
	)
	rules = append(rules, bothGenders("Calcium", 0, age(19), f(1300.0), nil, false)...)
	rules = append(rules, bothGenders("Calcium", 19, nil, f(1000.0), nil, false)...)
	rules = append(rules,
		ruleSeed{"Iron", "M", 0, age(19), f(11.0), nil, false},
		ruleSeed{"Iron", "F", 0, age(19), f(15.0), nil, false},
		ruleSeed{"Iron", "M", 19, nil, f(8.0), nil, false},
		ruleSeed{"Iron", "F", 19, nil, f(18.0), nil, false},
	)
	rules = append(rules, bothGenders("Phosphorus", 0, age(19), f(1250.0), nil, false)...)
	rules = append(rules, bothGenders("Phosphorus", 19, nil, f(700.0), nil, false)...)
	rules = append(rules,
		ruleSeed{"Potassium", "M", 0, age(19), f(3000.0), nil, false},
		ruleSeed{"Potassium", "F", 0, age(19), f(2300.0), nil, false},
		ruleSeed{"Potassium", "M", 19, nil, f(3400.0), nil, false},
		ruleSeed{"Potassium", "F", 19, nil, f(2600.0), nil, false},
	)

	return rules
}

// SeedReferenceData populates the nutrient table and the demographic
// default-intake rules. It is a no-op when the tables already hold data.
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Nutrient{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		nutrients := make([]models.Nutrient, len(nutrientSeeds))
		copy(nutrients, nutrientSeeds)
		if err := db.Create(&nutrients).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.DefaultNutrientRule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var nutrients []models.Nutrient
	if err := db.Find(&nutrients).Error; err != nil {
		return err
	}
	idByName := make(map[string]uint, len(nutrients))
	for _, n := range nutrients {
		idByName[n.Name] = n.ID
	}

	seeds := defaultRuleSeeds()
	rules := make([]models.DefaultNutrientRule, 0, len(seeds))
	for _, r := range seeds {
		nutrientID, ok := idByName[r.Nutrient]
		if !ok {
			return fmt.Errorf("seed: unknown nutrient %q", r.Nutrient)
		}
		rules = append(rules, models.DefaultNutrientRule{
			NutrientID: nutrientID,
			MinIntake:  r.Min,
			MaxIntake:  r.Max,
			Relative:   r.Relative,
			Gender:     r.Gender,
			AgeMin:     r.AgeMin,
			AgeMax:     r.AgeMax,
		})
	}

	return db.Create(&rules).Error
}
