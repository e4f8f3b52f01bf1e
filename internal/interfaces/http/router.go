package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SaleUC *sales.SaleUseCase
}

// Router registra las rutas de la API: las cuatro operaciones del núcleo de
// ventas más el comprobante PDF.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	saleHandler := NewSaleHandler(deps.SaleUC)
	ventas := api.Group("/ventas")
	ventas.Post("/", saleHandler.Register)
	ventas.Get("/", saleHandler.List)
	ventas.Get("/:id", saleHandler.GetByID)
	ventas.Get("/:id/comprobante", saleHandler.Receipt)

	api.Get("/clientes/:id/ventas", saleHandler.ListByClient)
}
