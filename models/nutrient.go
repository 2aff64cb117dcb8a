package models

// Nutrient is immutable reference data.
type Nutrient struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Unit string `gorm:"size:10;not null" json:"unit"`
}

func (Nutrient) TableName() string {
	return "nutrient"
}

// DefaultNutrientRule is one row of the demographic intake-estimate table
// used to seed a new diet's targets. AgeMin is inclusive, AgeMax exclusive;
// a nil AgeMax means unbounded.
type DefaultNutrientRule struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	NutrientID uint     `gorm:"index;not null" json:"nutrient_id"`
	MinIntake  *float64 `json:"min_intake"`
	MaxIntake  *float64 `json:"max_intake"`
	Relative   bool     `gorm:"not null" json:"relative"`
	Gender     string   `gorm:"size:1;not null" json:"gender"`
	AgeMin     int      `gorm:"not null" json:"age_min"`
	AgeMax     *int     `json:"age_max"`
}

func (DefaultNutrientRule) TableName() string {
	return "default_nutrient_rule"
}
