package configs

import (
	"log/slog"

	"pos-backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedDemo fills an empty menu with a few items so a fresh install can take orders.
func SeedDemo(db *gorm.DB, log *slog.Logger) error {
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("skip demo seed: menu not empty", "items", count)
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Zinger Burger", Price: decimal.NewFromInt(500), Description: "Crispy chicken fillet burger", PreparationTime: 10},
		{Name: "Fries", Price: decimal.NewFromInt(300), Description: "Large salted fries", PreparationTime: 5},
		{Name: "Chicken Wrap", Price: decimal.NewFromInt(450), Description: "Grilled chicken wrap", PreparationTime: 8},
		{Name: "Soft Drink", Price: decimal.NewFromInt(150), Description: "Chilled 500ml", PreparationTime: 1},
	}
	for i := range items {
		items[i].IsActive = true
		if err := db.FirstOrCreate(&items[i], entity.MenuItem{Name: items[i].Name}).Error; err != nil {
			return err
		}
	}
	log.Info("demo menu seeded", "items", len(items))
	return nil
}
