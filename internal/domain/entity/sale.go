package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta. Una vez persistida es inmutable.
// La venta es dueña exclusiva de sus líneas (Details), en el orden enviado;
// las líneas referencian al producto por ID, nunca de vuelta a la venta completa.
type Sale struct {
	ID        string
	ClientID  string
	Date      time.Time       // asignada por el servidor al registrar
	Total     decimal.Decimal // suma exacta de los subtotales de las líneas
	Details   []*SaleDetail
	CreatedAt time.Time
}

// SaleDetail representa una línea de venta. UnitPrice es el precio del producto
// capturado al momento de la venta; no cambia aunque el producto cambie de precio.
type SaleDetail struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Subtotal cantidad por precio unitario capturado.
func (d *SaleDetail) Subtotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}
