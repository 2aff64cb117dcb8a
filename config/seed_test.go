package config

import (
	"testing"

	"github.com/rdbo/nutrinow/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
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
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestSeedReferenceData(t *testing.T) {
	db := newSeedTestDB(t)

	if err := SeedReferenceData(db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var nutrientCount int64
	db.Model(&models.Nutrient{}).Count(&nutrientCount)
	if nutrientCount != int64(len(nutrientSeeds)) {
		t.Errorf("expected %d nutrients, got %d", len(nutrientSeeds), nutrientCount)
	}

	var ruleCount int64
	db.Model(&models.DefaultNutrientRule{}).Count(&ruleCount)
	if ruleCount == 0 {
		t.Fatal("expected default nutrient rules to be seeded")
	}

	// every rule must point at a real nutrient
	var orphans int64
	db.Model(&models.DefaultNutrientRule{}).
		Where("nutrient_id NOT IN (SELECT id FROM nutrient)").
		Count(&orphans)
	if orphans != 0 {
		t.Errorf("%d rules reference missing nutrients", orphans)
	}

	// relative rules exist for both genders across all ages
	var relative int64
	db.Model(&models.DefaultNutrientRule{}).
		Where("relative = ? AND age_min = 0 AND age_max IS NULL", true).
		Count(&relative)
	if relative == 0 {
		t.Error("expected weight-relative rules for all demographics")
	}
}

func TestSeedReferenceDataIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	if err := SeedReferenceData(db); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	var nutrientsBefore, rulesBefore int64
	db.Model(&models.Nutrient{}).Count(&nutrientsBefore)
	db.Model(&models.DefaultNutrientRule{}).Count(&rulesBefore)

	if err := SeedReferenceData(db); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	var nutrientsAfter, rulesAfter int64
	db.Model(&models.Nutrient{}).Count(&nutrientsAfter)
	db.Model(&models.DefaultNutrientRule{}).Count(&rulesAfter)

	if nutrientsBefore != nutrientsAfter || rulesBefore != rulesAfter {
		t.Error("re-seeding must not duplicate reference data")
	}
}
