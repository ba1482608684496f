package repository

import "errors"

// ErrNotFound is returned when an id-based lookup matches no row.
var ErrNotFound = errors.New("record not found")
