package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Create persiste cabecera y líneas como una sola unidad durable; dentro de una
// transacción comparte suerte con los descuentos de stock de la misma venta.
// No existe Update: las ventas registradas son inmutables.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error)
	ListByClient(clientID string) ([]*entity.Sale, error)
	List() ([]*entity.Sale, error)
}
