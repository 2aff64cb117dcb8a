package models

type Diet struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"size:100;not null" json:"name"`
}

func (Diet) TableName() string {
	return "diet"
}

// DietNutrient is one intake target of a diet. Relative targets are
// expressed per kg of body weight instead of as absolute amounts.
type DietNutrient struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	DietID     uint     `gorm:"index;not null" json:"diet_id"`
	NutrientID uint     `gorm:"not null" json:"nutrient_id"`
	MinIntake  *float64 `json:"min_intake"`
	MaxIntake  *float64 `json:"max_intake"`
	Relative   bool     `gorm:"not null" json:"relative"`
}

func (DietNutrient) TableName() string {
	return "diet_nutrition"
}
