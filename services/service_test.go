package services

import (
	"testing"
	"time"

	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/models"
	"github.com/rdbo/nutrinow/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access test connection pool: %v", err)
	}
	// in-memory sqlite lives on a single connection
	sqlDB.SetMaxOpenConns(1)

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email, gender string, age int) *models.UserAccount {
	t.Helper()

	hash, err := utils.HashPassword("secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.UserAccount{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Gender:       gender,
		Weight:       70,
		Birthdate:    time.Now().AddDate(-age, 0, 0),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}

func createNutrient(t *testing.T, db *gorm.DB, name, unit string) *models.Nutrient {
	t.Helper()

	nutrient := models.Nutrient{Name: name, Unit: unit}
	if err := db.Create(&nutrient).Error; err != nil {
		t.Fatalf("failed to create nutrient %s: %v", name, err)
	}
	return &nutrient
}

func createFood(t *testing.T, db *gorm.DB, name string) *models.Food {
	t.Helper()

	food := models.Food{Name: name}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("failed to create food %s: %v", name, err)
	}
	return &food
}

func createServing(t *testing.T, db *gorm.DB, foodID uint, unit string, amount float64, relative *uint) *models.Serving {
	t.Helper()

	serving := models.Serving{FoodID: foodID, Unit: unit, Amount: amount, RelativeID: relative}
	if err := db.Create(&serving).Error; err != nil {
		t.Fatalf("failed to create serving: %v", err)
	}
	return &serving
}

func addServingNutrient(t *testing.T, db *gorm.DB, servingID, nutrientID uint, amount float64) {
	t.Helper()

	row := models.ServingNutrient{ServingID: servingID, NutrientID: nutrientID, Amount: amount}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to create serving nutrient: %v", err)
	}
}

// breadFixture creates a food with an absolute 100 g serving (Protein 9,
// Fats 3.2) and a relative "slice" serving worth 50 g each.
func breadFixture(t *testing.T, db *gorm.DB) (food *models.Food, base, slice *models.Serving) {
	t.Helper()

	protein := createNutrient(t, db, "Protein", "g")
	fats := createNutrient(t, db, "Fats", "g")

	food = createFood(t, db, "Whole Wheat Bread")
	base = createServing(t, db, food.ID, "g", 100, nil)
	addServingNutrient(t, db, base.ID, protein.ID, 9)
	addServingNutrient(t, db, base.ID, fats.ID, 3.2)
	slice = createServing(t, db, food.ID, "slice", 50, &base.ID)
	return food, base, slice
}

func ruleRecord(nutrientID uint, gender string, ageMin int, ageMax *int, min float64) models.DefaultNutrientRule {
	return models.DefaultNutrientRule{
		NutrientID: nutrientID,
		MinIntake:  &min,
		Gender:     gender,
		AgeMin:     ageMin,
		AgeMax:     ageMax,
	}
}

func nutrientByName(nutrients []NutrientAmount, name string) (NutrientAmount, bool) {
	for _, n := range nutrients {
		if n.Name == name {
			return n, true
		}
	}
	return NutrientAmount{}, false
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
