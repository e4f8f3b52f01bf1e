package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	uc *sales.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Register registra una venta: valida, descuenta stock y persiste, todo o nada.
// POST /api/ventas
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.RegisterSale(c.Context(), in)
	if err != nil {
		return saleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// GetByID obtiene una venta completa con sus líneas.
// GET /api/ventas/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSaleByID(c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(sale)
}

// List lista todas las ventas registradas.
// GET /api/ventas
func (h *SaleHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.ListSales()
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(list)
}

// ListByClient lista las ventas de un cliente.
// GET /api/clientes/:id/ventas
func (h *SaleHandler) ListByClient(c *fiber.Ctx) error {
	list, err := h.uc.ListSalesByClient(c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	return c.JSON(list)
}

// Receipt descarga el comprobante PDF de una venta.
// GET /api/ventas/:id/comprobante
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.SaleReceiptPDF(c.Context(), c.Params("id"))
	if err != nil {
		return saleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// saleError traduce errores de dominio a respuestas HTTP. El caller siempre
// recibe un código específico: puede distinguir "reintente con menos cantidad"
// de "el cliente no existe".
func saleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptySale),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrSaleNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
