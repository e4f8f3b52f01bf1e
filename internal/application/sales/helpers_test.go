package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/internal/infrastructure/memory"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: entorno en memoria + datos semilla
// ──────────────────────────────────────────────────────────────────────────────

// stubReceipts implementa sales.ReceiptGenerator sin generar PDF real.
// Captura los argumentos de la última llamada para poder afirmarlos.
type stubReceipts struct {
	lastSale  *entity.Sale
	lastLines []sales.ReceiptLine
}

func (s *stubReceipts) GenerateReceiptPDF(_ context.Context, sale *entity.Sale, _ *entity.Client, lines []sales.ReceiptLine) ([]byte, error) {
	s.lastSale = sale
	s.lastLines = lines
	return []byte("%PDF-stub"), nil
}

// testEnv arma el caso de uso completo sobre el almacenamiento en memoria.
type testEnv struct {
	store    *memory.Store
	products *memory.ProductStore
	clients  *memory.ClientStore
	sales    *memory.SaleStore
	receipts *stubReceipts
	uc       *sales.SaleUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := memory.NewStore()
	env := &testEnv{
		store:    store,
		products: memory.NewProductStore(store),
		clients:  memory.NewClientStore(store),
		sales:    memory.NewSaleStore(store),
		receipts: &stubReceipts{},
	}
	env.uc = sales.NewSaleUseCase(
		memory.NewTxRunner(store),
		env.clients,
		env.products,
		env.sales,
		env.receipts,
		logger.Nop(),
	)
	return env
}

// newTestEnvWrappingProducts igual que newTestEnv pero interpone un decorador
// sobre el ProductRepository que el caso de uso usa para lecturas (las
// transacciones siguen yendo contra el store).
func newTestEnvWrappingProducts(t *testing.T, wrap func(repository.ProductRepository) repository.ProductRepository) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.uc = sales.NewSaleUseCase(
		memory.NewTxRunner(env.store),
		env.clients,
		wrap(env.products),
		env.sales,
		env.receipts,
		logger.Nop(),
	)
	return env
}

func (e *testEnv) seedClient(t *testing.T, firstName, lastName string) *entity.Client {
	t.Helper()
	c := &entity.Client{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     firstName + "@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, e.clients.Create(c))
	return c
}

func (e *testEnv) seedProduct(t *testing.T, sku, price string, stock int) *entity.Product {
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
	require.NoError(t, e.products.Create(p))
	return p
}

func (e *testEnv) stockOf(t *testing.T, productID string) int {
	t.Helper()
	p, err := e.products.GetByID(productID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Stock
}
