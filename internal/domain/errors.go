package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrClientNotFound    = errors.New("cliente no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrCategoryNotFound  = errors.New("categoría no encontrada")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("la cantidad debe ser mayor que cero")
	ErrEmptySale         = errors.New("la venta debe contener al menos un producto")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError indica qué línea y producto abortaron la venta.
// Unwrap retorna ErrInsufficientStock para seguir usando errors.Is en los callers.
type InsufficientStockError struct {
	ProductID string
	Line      int // índice de la línea en el orden enviado (base 0)
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s (línea %d): disponible %d, solicitado %d",
		e.ProductID, e.Line, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
