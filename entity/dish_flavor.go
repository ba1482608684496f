package entity

import "time"

// DishFlavor is a selectable attribute of a dish (e.g. spice level).
// Rows live and die with their owning dish; the replace-all update
// strategy hard-deletes them, so no soft-delete column here.
type DishFlavor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	DishID    uint      `json:"dishId" gorm:"index;not null"`
	Name      string    `json:"name"`
	Values    []string  `json:"values" gorm:"serializer:json"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
