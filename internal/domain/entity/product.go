package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su stock disponible.
// Stock nunca es negativo; solo se modifica vía el libro de stock (ventas) o ajustes.
type Product struct {
	ID         string
	SKU        string // código único
	Name       string
	UnitPrice  decimal.Decimal // precio de venta vigente
	Stock      int
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
