package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
// GetByName es match exacto; la unicidad de nombre se valida contra él.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List(limit, offset int) ([]*entity.Category, error)
}
