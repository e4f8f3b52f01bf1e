package sales

import (
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// GetSaleByID obtiene una venta completa: cabecera, líneas en orden, cliente y
// datos de producto resueltos.
func (uc *SaleUseCase) GetSaleByID(id string) (*dto.SaleResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	return uc.materialize(sale, make(map[string]*entity.Product))
}

// ListSales lista todas las ventas registradas, materializadas.
func (uc *SaleUseCase) ListSales() (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.materializeList(sales)
}

// ListSalesByClient lista las ventas de un cliente. El cliente debe existir.
func (uc *SaleUseCase) ListSalesByClient(clientID string) (*dto.SaleListResponse, error) {
	if clientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	sales, err := uc.saleRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return uc.materializeList(sales)
}

// materializeList materializa varias ventas compartiendo la caché de productos,
// así cada producto se resuelve una sola vez por llamada.
func (uc *SaleUseCase) materializeList(sales []*entity.Sale) (*dto.SaleListResponse, error) {
	products := make(map[string]*entity.Product)
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, sale := range sales {
		resp, err := uc.materialize(sale, products)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// materialize arma la vista de una venta. Cada producto referenciado se busca una
// única vez (caché por llamada); un producto o cliente ya ausente no tumba la
// lectura histórica, solo deja su resumen con los datos que hay.
func (uc *SaleUseCase) materialize(sale *entity.Sale, products map[string]*entity.Product) (*dto.SaleResponse, error) {
	details := sale.Details
	if details == nil {
		loaded, err := uc.saleRepo.GetDetailsBySaleID(sale.ID)
		if err != nil {
			return nil, err
		}
		details = loaded
	}
	for _, d := range details {
		if _, ok := products[d.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(d.ProductID)
		if err != nil {
			return nil, err
		}
		products[d.ProductID] = product
	}
	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}
	full := *sale
	full.Details = details
	return uc.toResponse(&full, client, products), nil
}

func (uc *SaleUseCase) toResponse(sale *entity.Sale, client *entity.Client, products map[string]*entity.Product) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:      sale.ID,
		Date:    sale.Date,
		Total:   sale.Total,
		Details: make([]dto.SaleDetailResponse, 0, len(sale.Details)),
	}
	if client != nil {
		resp.Client = dto.ClientSummary{
			ID:        client.ID,
			FirstName: client.FirstName,
			LastName:  client.LastName,
			Email:     client.Email,
		}
	} else {
		resp.Client = dto.ClientSummary{ID: sale.ClientID}
	}
	for _, d := range sale.Details {
		summary := dto.ProductSummary{ID: d.ProductID}
		if p := products[d.ProductID]; p != nil {
			summary.SKU = p.SKU
			summary.Name = p.Name
		}
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ID:        d.ID,
			Product:   summary,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal(),
		})
	}
	return resp
}
