package entity

import (
	"time"

	"gorm.io/gorm"
)

// Sale status values shared by Dish and Setmeal.
const (
	StatusDiscontinued = 0
	StatusOnSale       = 1
)

type Dish struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"not null;index"`
	CategoryID uint           `json:"categoryId" gorm:"index"`
	Price      int64          `json:"price"`
	Status     int            `json:"status" gorm:"default:1"`
	Sort       int            `json:"sort"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	Category Category     `json:"-"`
	Flavors  []DishFlavor `json:"-"`
}
