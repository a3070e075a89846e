// Package sqlite provides SQLite database setup and configuration
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pantrio/v1/internal/domain/pantry"
	gormModels "github.com/pantrio/v1/internal/infrastructure/persistence/gorm"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&gormModels.StockItemModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the database with a small demo inventory
func SeedDatabase(db *gorm.DB) error {
	var itemCount int64
	db.Model(&gormModels.StockItemModel{}).Count(&itemCount)
	if itemCount > 0 {
		return nil // Already seeded
	}

	now := time.Now()
	inThreeDays := now.AddDate(0, 0, 3)
	inTwoWeeks := now.AddDate(0, 0, 14)
	milkThreshold := 2.0
	riceThreshold := 1.0
	cheesePrice := 4.5
	coffeePrice := 9.99

	demoItems := []gormModels.StockItemModel{
		{
			ID:                uuid.New(),
			Kind:              string(pantry.KindPantry),
			Name:              "Milk",
			Quantity:          1,
			Unit:              string(pantry.UnitLiter),
			Category:          "Dairy",
			ExpiryDate:        &inThreeDays,
			LowStockThreshold: &milkThreshold,
			AddedAt:           now.Add(-48 * time.Hour),
		},
		{
			ID:                uuid.New(),
			Kind:              string(pantry.KindPantry),
			Name:              "Basmati Rice",
			Quantity:          5,
			Unit:              string(pantry.UnitKilogram),
			Category:          "Grains",
			LowStockThreshold: &riceThreshold,
			AddedAt:           now.Add(-72 * time.Hour),
		},
		{
			ID:         uuid.New(),
			Kind:       string(pantry.KindPantry),
			Name:       "Eggs",
			Quantity:   1,
			Unit:       string(pantry.UnitDozen),
			Category:   "Dairy",
			ExpiryDate: &inTwoWeeks,
			AddedAt:    now.Add(-24 * time.Hour),
		},
		{
			ID:             uuid.New(),
			Kind:           string(pantry.KindShopping),
			Name:           "Cheddar",
			Quantity:       1,
			Unit:           string(pantry.UnitPack),
			Category:       "Dairy",
			EstimatedPrice: &cheesePrice,
			Priority:       string(pantry.PriorityHigh),
			AddedAt:        now.Add(-2 * time.Hour),
		},
		{
			ID:             uuid.New(),
			Kind:           string(pantry.KindShopping),
			Name:           "Ground Coffee",
			Quantity:       2,
			Unit:           string(pantry.UnitBag),
			Category:       "Beverages",
			EstimatedPrice: &coffeePrice,
			Priority:       string(pantry.PriorityMedium),
			Checked:        true,
			AddedAt:        now.Add(-1 * time.Hour),
		},
	}

	for _, item := range demoItems {
		if err := db.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create demo item: %w", err)
		}
	}

	return nil
}
