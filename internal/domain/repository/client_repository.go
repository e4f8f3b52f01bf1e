package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// El núcleo de ventas solo lo consulta; nunca lo modifica.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
}
