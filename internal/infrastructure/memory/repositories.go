package memory

import (
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductStore)(nil)
	_ repository.ClientRepository   = (*ClientStore)(nil)
	_ repository.CategoryRepository = (*CategoryStore)(nil)
	_ repository.SaleRepository     = (*SaleStore)(nil)
)

// ProductStore adaptador de productos. Con tx != nil participa en la transacción
// del TxRunner: GetForUpdate toma el candado del producto y las escrituras de
// stock quedan anotadas en el diario de deshacer.
type ProductStore struct {
	store *Store
	tx    *txState
}

// NewProductStore construye el adaptador fuera de transacción.
func NewProductStore(store *Store) *ProductStore {
	return &ProductStore{store: store}
}

// Create persiste un producto. SKU único.
func (s *ProductStore) Create(product *entity.Product) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, p := range s.store.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	s.store.products[product.ID] = copyProduct(product)
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (s *ProductStore) GetByID(id string) (*entity.Product, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return copyProduct(s.store.products[id]), nil
}

// GetBySKU obtiene un producto por SKU exacto; nil si no existe.
func (s *ProductStore) GetBySKU(sku string) (*entity.Product, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, p := range s.store.products {
		if p.SKU == sku {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

// GetForUpdate obtiene el producto tomando su candado hasta el fin de la
// transacción. Fuera de transacción equivale a GetByID. Si el candado no se
// consigue dentro del plazo retorna ErrConflict y la transacción debe abortar.
func (s *ProductStore) GetForUpdate(id string) (*entity.Product, error) {
	if s.tx != nil {
		if err := s.tx.lockProduct(id); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

// UpdateStock escribe el nuevo stock. Dentro de una transacción, el valor
// anterior queda en el diario para poder compensar en rollback.
func (s *ProductStore) UpdateStock(id string, stock int) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	p, ok := s.store.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	if s.tx != nil {
		prev := p.Stock
		s.tx.onRollback(func() {
			s.store.mu.Lock()
			if cur, ok := s.store.products[id]; ok {
				cur.Stock = prev
			}
			s.store.mu.Unlock()
		})
	}
	p.Stock = stock
	return nil
}

// List lista productos con paginación (orden no garantizado).
func (s *ProductStore) List(limit, offset int) ([]*entity.Product, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	all := make([]*entity.Product, 0, len(s.store.products))
	for _, p := range s.store.products {
		all = append(all, copyProduct(p))
	}
	return page(all, limit, offset), nil
}

// ClientStore adaptador de clientes.
type ClientStore struct {
	store *Store
}

// NewClientStore construye el adaptador.
func NewClientStore(store *Store) *ClientStore {
	return &ClientStore{store: store}
}

// Create persiste un cliente.
func (s *ClientStore) Create(client *entity.Client) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.clients[client.ID] = copyClient(client)
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (s *ClientStore) GetByID(id string) (*entity.Client, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return copyClient(s.store.clients[id]), nil
}

// List lista clientes con paginación (orden no garantizado).
func (s *ClientStore) List(limit, offset int) ([]*entity.Client, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	all := make([]*entity.Client, 0, len(s.store.clients))
	for _, c := range s.store.clients {
		all = append(all, copyClient(c))
	}
	return page(all, limit, offset), nil
}

// CategoryStore adaptador de categorías.
type CategoryStore struct {
	store *Store
}

// NewCategoryStore construye el adaptador.
func NewCategoryStore(store *Store) *CategoryStore {
	return &CategoryStore{store: store}
}

// Create persiste una categoría. Name único (match exacto).
func (s *CategoryStore) Create(category *entity.Category) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, c := range s.store.categories {
		if c.Name == category.Name {
			return domain.ErrDuplicate
		}
	}
	s.store.categories[category.ID] = copyCategory(category)
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (s *CategoryStore) GetByID(id string) (*entity.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return copyCategory(s.store.categories[id]), nil
}

// GetByName obtiene una categoría por nombre exacto; nil si no existe.
func (s *CategoryStore) GetByName(name string) (*entity.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, c := range s.store.categories {
		if c.Name == name {
			return copyCategory(c), nil
		}
	}
	return nil, nil
}

// List lista categorías con paginación (orden no garantizado).
func (s *CategoryStore) List(limit, offset int) ([]*entity.Category, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	all := make([]*entity.Category, 0, len(s.store.categories))
	for _, c := range s.store.categories {
		all = append(all, copyCategory(c))
	}
	return page(all, limit, offset), nil
}

// SaleStore adaptador de ventas. Solo inserta y lee; no existe Update.
type SaleStore struct {
	store *Store
	tx    *txState
}

// NewSaleStore construye el adaptador fuera de transacción.
func NewSaleStore(store *Store) *SaleStore {
	return &SaleStore{store: store}
}

// Create persiste cabecera y líneas como una sola unidad. Dentro de una
// transacción, el rollback elimina la venta insertada.
func (s *SaleStore) Create(sale *entity.Sale) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.sales[sale.ID] = copySaleHeader(sale)
	lines := make([]*entity.SaleDetail, 0, len(sale.Details))
	for _, d := range sale.Details {
		lines = append(lines, copyDetail(d))
	}
	s.store.details[sale.ID] = lines
	s.store.saleOrder = append(s.store.saleOrder, sale.ID)
	if s.tx != nil {
		id := sale.ID
		s.tx.onRollback(func() {
			s.store.mu.Lock()
			delete(s.store.sales, id)
			delete(s.store.details, id)
			if n := len(s.store.saleOrder); n > 0 && s.store.saleOrder[n-1] == id {
				s.store.saleOrder = s.store.saleOrder[:n-1]
			}
			s.store.mu.Unlock()
		})
	}
	return nil
}

// GetByID obtiene la cabecera de una venta; nil si no existe.
func (s *SaleStore) GetByID(id string) (*entity.Sale, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return copySaleHeader(s.store.sales[id]), nil
}

// GetDetailsBySaleID obtiene las líneas en su orden original.
func (s *SaleStore) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	lines := s.store.details[saleID]
	out := make([]*entity.SaleDetail, 0, len(lines))
	for _, d := range lines {
		out = append(out, copyDetail(d))
	}
	return out, nil
}

// ListByClient lista ventas de un cliente, más recientes primero.
func (s *SaleStore) ListByClient(clientID string) ([]*entity.Sale, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	var out []*entity.Sale
	for i := len(s.store.saleOrder) - 1; i >= 0; i-- {
		if sale := s.store.sales[s.store.saleOrder[i]]; sale != nil && sale.ClientID == clientID {
			out = append(out, copySaleHeader(sale))
		}
	}
	return out, nil
}

// List lista todas las ventas, más recientes primero.
func (s *SaleStore) List() ([]*entity.Sale, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	out := make([]*entity.Sale, 0, len(s.store.saleOrder))
	for i := len(s.store.saleOrder) - 1; i >= 0; i-- {
		if sale := s.store.sales[s.store.saleOrder[i]]; sale != nil {
			out = append(out, copySaleHeader(sale))
		}
	}
	return out, nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}
