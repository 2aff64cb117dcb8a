package models

type Food struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;index" json:"name"`
}

func (Food) TableName() string {
	return "food"
}

// Serving is a quantified unit of a food (e.g. "100 g", "1 slice").
// An absolute serving owns ServingNutrient rows. A relative serving has
// RelativeID set instead: its amount is the quantity-per-unit (e.g. one
// slice weighs 50 g) and its nutrients are derived by scaling the
// referenced serving's rows.
type Serving struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	FoodID     uint    `gorm:"index;not null" json:"food_id"`
	Unit       string  `gorm:"size:20;not null" json:"unit"`
	Amount     float64 `gorm:"not null" json:"amount"`
	RelativeID *uint   `gorm:"column:relative" json:"relative"`
}

func (Serving) TableName() string {
	return "serving"
}

type ServingNutrient struct {
	ServingID  uint    `gorm:"primaryKey" json:"serving_id"`
	NutrientID uint    `gorm:"primaryKey" json:"nutrient_id"`
	Amount     float64 `gorm:"not null" json:"amount"`
}

func (ServingNutrient) TableName() string {
	return "serving_nutrient"
}
