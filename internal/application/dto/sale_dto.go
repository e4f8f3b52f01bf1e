package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest un renglón de la solicitud: qué producto y cuántas unidades.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// RegisterSaleRequest entrada para registrar una venta.
type RegisterSaleRequest struct {
	ClientID string            `json:"client_id"`
	Items    []SaleItemRequest `json:"items"`
}

// ClientSummary datos del cliente para la vista de venta.
type ClientSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ProductSummary datos del producto para la línea de venta.
type ProductSummary struct {
	ID   string `json:"id"`
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// SaleDetailResponse una línea de venta materializada.
// UnitPrice es el precio capturado al momento de la venta.
type SaleDetailResponse struct {
	ID        string          `json:"id"`
	Product   ProductSummary  `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse vista completa de una venta registrada.
type SaleResponse struct {
	ID      string               `json:"id"`
	Client  ClientSummary        `json:"client"`
	Date    time.Time            `json:"date"`
	Total   decimal.Decimal      `json:"total"`
	Details []SaleDetailResponse `json:"details"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
