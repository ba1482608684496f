package services

import "errors"

// Integrity failures. Deletion is rejected, never cascaded: the whole
// batch fails and no row is touched.
var (
	ErrDishInActiveSetmeal = errors.New("dish is part of an on-sale setmeal")
	ErrSetmealOnSale       = errors.New("setmeal is still on sale")
)
