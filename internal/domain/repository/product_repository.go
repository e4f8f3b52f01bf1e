package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateStock se usan dentro de transacciones para garantizar
// que el check-then-decrement de stock sea atómico por producto.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE en PostgreSQL).
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock escribe el nuevo stock. El caller ya validó que no es negativo.
	UpdateStock(id string, stock int) error
	List(limit, offset int) ([]*entity.Product, error)
}
