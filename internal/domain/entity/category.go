package entity

import "time"

// Category representa una categoría de productos. Name es único (match exacto).
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
