package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubReceipts struct{}

func (stubReceipts) GenerateReceiptPDF(context.Context, *entity.Sale, *entity.Client, []sales.ReceiptLine) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type testAPI struct {
	app      *fiber.App
	products *memory.ProductStore
	clients  *memory.ClientStore
}

func buildTestAPI(t *testing.T) *testAPI {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductStore(store)
	clients := memory.NewClientStore(store)
	uc := sales.NewSaleUseCase(
		memory.NewTxRunner(store),
		clients,
		products,
		memory.NewSaleStore(store),
		stubReceipts{},
		logger.Nop(),
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{SaleUC: uc})
	return &testAPI{app: app, products: products, clients: clients}
}

func (a *testAPI) seedClient(t *testing.T) *entity.Client {
	t.Helper()
	c := &entity.Client{
		ID:        uuid.NewString(),
		FirstName: "Laura",
		LastName:  "Gómez",
		Email:     "laura@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, a.clients.Create(c))
	return c
}

func (a *testAPI) seedProduct(t *testing.T, sku, price string, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:        uuid.NewString(),
		SKU:       sku,
		Name:      "Producto " + sku,
		UnitPrice: decimal.RequireFromString(price),
		Stock:     stock,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, a.products.Create(p))
	return p
}

func (a *testAPI) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (a *testAPI) get(t *testing.T, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_Retorna201ConVenta(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)
	product := api.seedProduct(t, "SKU-1", "5.00", 10)

	resp := api.post(t, "/api/ventas", dto.RegisterSaleRequest{
		ClientID: client.ID,
		Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 3}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode[dto.SaleResponse](t, resp)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, client.ID, body.Client.ID)
	assert.True(t, body.Total.Equal(decimal.RequireFromString("15.00")))
	require.Len(t, body.Details, 1)
	assert.Equal(t, 3, body.Details[0].Quantity)
}

func TestRegisterSale_VentaVacia_Retorna400(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)

	resp := api.post(t, "/api/ventas", dto.RegisterSaleRequest{ClientID: client.ID})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestRegisterSale_ClienteInexistente_Retorna404(t *testing.T) {
	api := buildTestAPI(t)
	product := api.seedProduct(t, "SKU-1", "5.00", 10)

	resp := api.post(t, "/api/ventas", dto.RegisterSaleRequest{
		ClientID: uuid.NewString(),
		Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 1}},
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestRegisterSale_StockInsuficiente_Retorna409(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)
	product := api.seedProduct(t, "SKU-1", "5.00", 2)

	resp := api.post(t, "/api/ventas", dto.RegisterSaleRequest{
		ClientID: client.ID,
		Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 5}},
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code,
		"el caller debe poder distinguir el rechazo por stock")
	assert.Contains(t, body.Message, product.ID, "el mensaje señala el producto que no alcanzó")
}

func TestRegisterSale_CuerpoInvalido_Retorna400(t *testing.T) {
	api := buildTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/ventas", bytes.NewReader([]byte("{no es json")))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := api.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/ventas, /api/ventas/:id, /api/clientes/:id/ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_NoExiste_Retorna404(t *testing.T) {
	api := buildTestAPI(t)
	resp := api.get(t, "/api/ventas/"+uuid.NewString())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetSale_RetornaVentaConLineas(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)
	product := api.seedProduct(t, "SKU-1", "5.00", 10)

	created := decode[dto.SaleResponse](t, api.post(t, "/api/ventas", dto.RegisterSaleRequest{
		ClientID: client.ID,
		Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 2}},
	}))

	resp := api.get(t, "/api/ventas/"+created.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.SaleResponse](t, resp)
	assert.Equal(t, created.ID, body.ID)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "SKU-1", body.Details[0].Product.SKU)
}

func TestListSales_RetornaTodas(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)
	product := api.seedProduct(t, "SKU-1", "1.00", 100)

	for i := 0; i < 3; i++ {
		resp := api.post(t, "/api/ventas", dto.RegisterSaleRequest{
			ClientID: client.ID,
			Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 1}},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := api.get(t, "/api/ventas/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[dto.SaleListResponse](t, resp)
	assert.Equal(t, 3, body.Total)
}

func TestListSalesByClient_ClienteInexistente_Retorna404(t *testing.T) {
	api := buildTestAPI(t)
	resp := api.get(t, "/api/clientes/"+uuid.NewString()+"/ventas")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListSalesByClient_RetornaSoloLasDelCliente(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)
	otro := &entity.Client{ID: uuid.NewString(), FirstName: "Andrés", LastName: "Rojas", Email: "andres@example.com", CreatedAt: time.Now()}
	require.NoError(t, api.clients.Create(otro))
	product := api.seedProduct(t, "SKU-1", "1.00", 100)

	require.Equal(t, http.StatusCreated, api.post(t, "/api/ventas", dto.RegisterSaleRequest{
		ClientID: client.ID,
		Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 1}},
	}).StatusCode)

	resp := api.get(t, "/api/clientes/"+client.ID+"/ventas")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.SaleListResponse](t, resp).Total)

	resp = api.get(t, "/api/clientes/"+otro.ID+"/ventas")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.SaleListResponse](t, resp).Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/ventas/:id/comprobante
// ──────────────────────────────────────────────────────────────────────────────

func TestReceipt_DescargaPDF(t *testing.T) {
	api := buildTestAPI(t)
	client := api.seedClient(t)
	product := api.seedProduct(t, "SKU-1", "5.00", 10)

	created := decode[dto.SaleResponse](t, api.post(t, "/api/ventas", dto.RegisterSaleRequest{
		ClientID: client.ID,
		Items:    []dto.SaleItemRequest{{ProductID: product.ID, Quantity: 1}},
	}))

	resp := api.get(t, "/api/ventas/"+created.ID+"/comprobante")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "venta_"+created.ID+".pdf")
}

func TestReceipt_VentaInexistente_Retorna404(t *testing.T) {
	api := buildTestAPI(t)
	resp := api.get(t, "/api/ventas/"+uuid.NewString()+"/comprobante")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
