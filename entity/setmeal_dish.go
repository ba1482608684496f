package entity

import "time"

// SetmealDish links a setmeal to one of its component dishes.
// Name and Price are copied from the dish at link time so the combo
// detail view does not depend on later dish edits.
type SetmealDish struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SetmealID uint      `json:"setmealId" gorm:"index;not null"`
	DishID    uint      `json:"dishId" gorm:"index;not null"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Copies    int       `json:"copies"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
