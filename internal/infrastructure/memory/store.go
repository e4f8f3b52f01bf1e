// Package memory implementa los puertos de persistencia sobre mapas en memoria.
// Sirve para tests y para correr la API sin PostgreSQL. La serialización por
// producto se hace con un candado por ID (no un candado global): dos ventas
// concurrentes sobre productos distintos no se bloquean entre sí.
package memory

import (
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// Store guarda el estado compartido de todos los adaptadores en memoria.
type Store struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	clients    map[string]*entity.Client
	categories map[string]*entity.Category
	sales      map[string]*entity.Sale
	details    map[string][]*entity.SaleDetail
	saleOrder  []string // IDs de venta en orden de inserción

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex // candado por producto
}

// NewStore instancia el almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		products:   map[string]*entity.Product{},
		clients:    map[string]*entity.Client{},
		categories: map[string]*entity.Category{},
		sales:      map[string]*entity.Sale{},
		details:    map[string][]*entity.SaleDetail{},
		locks:      map[string]*sync.Mutex{},
	}
}

// productLock devuelve el candado del producto, creándolo si no existe.
func (s *Store) productLock(id string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}

func copyProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func copyClient(c *entity.Client) *entity.Client {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func copyCategory(c *entity.Category) *entity.Category {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func copySaleHeader(s *entity.Sale) *entity.Sale {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Details = nil
	return &cp
}

func copyDetail(d *entity.SaleDetail) *entity.SaleDetail {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
