package models

type Meal struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	DietID uint   `gorm:"index;not null" json:"diet_id"`
	Name   string `gorm:"size:100;not null" json:"name"`
}

func (Meal) TableName() string {
	return "meal"
}

// MealServing links a meal to a food serving with the consumed quantity,
// expressed in the serving's unit.
type MealServing struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	MealID    uint    `gorm:"index;not null" json:"meal_id"`
	ServingID uint    `gorm:"not null" json:"serving_id"`
	Amount    float64 `gorm:"not null" json:"amount"`
}

func (MealServing) TableName() string {
	return "meal_serving"
}
