package configs

import (
	"log"

	"github.com/linjialin0/reggie-take-out/entity"
)

// Seed default menu categories so a fresh install has a working sidebar.
func SeedCategories() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("categories already seeded, skipping")
		return nil
	}

	categories := []entity.Category{
		{Name: "Hot Dishes", Sort: 1},
		{Name: "Cold Dishes", Sort: 2},
		{Name: "Soups", Sort: 3},
		{Name: "Drinks", Sort: 4},
		{Name: "Combos", Sort: 5},
	}
	return db.Create(&categories).Error
}
