package inventory

import (
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// StockLedger ejecuta el check-then-decrement de stock de forma atómica por producto.
// Opera sobre un ProductRepository atado a la transacción del caller: la fila del
// producto queda bloqueada (GetForUpdate) desde la lectura hasta la escritura, así
// que dos ventas concurrentes sobre el mismo producto se serializan en ese punto.
type StockLedger struct{}

// NewStockLedger construye el libro de stock.
func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// ReserveAndDecrement bloquea el producto, verifica que el stock alcance y escribe
// el nuevo valor. line es el índice de la línea dentro de la venta, solo para
// diagnóstico del caller. Retorna el producto con el stock ya descontado.
//
// Si el descuento falla el caller debe abortar la transacción completa: el stock
// escrito solo se vuelve observable cuando la venta entera hace commit.
func (l *StockLedger) ReserveAndDecrement(repo repository.ProductRepository, productID string, quantity, line int) (*entity.Product, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	product, err := repo.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if product.Stock < quantity {
		return nil, &domain.InsufficientStockError{
			ProductID: productID,
			Line:      line,
			Requested: quantity,
			Available: product.Stock,
		}
	}
	product.Stock -= quantity
	if err := repo.UpdateStock(productID, product.Stock); err != nil {
		return nil, err
	}
	return product, nil
}
