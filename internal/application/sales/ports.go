package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Si fn retorna error, todo efecto aplicado dentro
// de la transacción (descuentos de stock, inserciones) se revierte: ninguna venta
// a medio reservar es observable desde afuera.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptLine línea de venta enriquecida con datos del producto para el comprobante.
type ReceiptLine struct {
	Detail      *entity.SaleDetail
	ProductName string
	ProductSKU  string
}

// ReceiptGenerator genera el comprobante PDF de una venta registrada.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, sale *entity.Sale, client *entity.Client, lines []ReceiptLine) ([]byte, error)
}
