package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/inventory"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// SaleUseCase registra ventas de forma transaccional y resuelve sus vistas de
// lectura. El registro pasa por dos fases: armado del borrador (validación y
// resolución, sin mutaciones) y commit (descuentos de stock + persistencia del
// agregado, todo o nada).
type SaleUseCase struct {
	txRunner    TxRunner
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	ledger      *inventory.StockLedger
	receipts    ReceiptGenerator
	log         *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	receipts ReceiptGenerator,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
		ledger:      inventory.NewStockLedger(),
		receipts:    receipts,
		log:         log,
	}
}

// SaleDraft venta candidata en memoria, aún no durable: cliente resuelto, líneas
// en el orden enviado con el precio vigente capturado, y total calculado.
type SaleDraft struct {
	Client *entity.Client
	Lines  []DraftLine
	Total  decimal.Decimal
}

// DraftLine una línea del borrador. UnitPrice queda congelado aquí: aunque el
// precio del producto cambie después, la línea histórica no se mueve.
type DraftLine struct {
	Product   *entity.Product
	Quantity  int
	UnitPrice decimal.Decimal
}

// RegisterSale valida y registra una venta completa. Si cualquier línea falla
// (producto inexistente, cantidad inválida, stock insuficiente) no queda ningún
// efecto: ni venta persistida ni stock descontado.
func (uc *SaleUseCase) RegisterSale(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	draft, err := uc.buildDraft(in)
	if err != nil {
		return nil, err
	}

	sale, err := uc.commit(ctx, draft)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			uc.log.Warn().Str("client_id", in.ClientID).Err(err).Msg("venta rechazada por stock insuficiente")
		}
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("client_id", sale.ClientID).
		Int("lines", len(sale.Details)).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta registrada")

	return uc.toResponse(sale, draft.Client, productIndex(draft)), nil
}

// buildDraft resuelve cliente y productos, captura precios vigentes y acumula el
// total exacto. Solo lecturas; el stock no se toca aquí. Las líneas conservan el
// orden enviado y los productos repetidos quedan como líneas separadas.
func (uc *SaleUseCase) buildDraft(in dto.RegisterSaleRequest) (*SaleDraft, error) {
	if in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrClientNotFound
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}

	draft := &SaleDraft{Client: client, Lines: make([]DraftLine, 0, len(in.Items))}
	for _, item := range in.Items {
		if item.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		line := DraftLine{
			Product:   product,
			Quantity:  item.Quantity,
			UnitPrice: product.UnitPrice,
		}
		draft.Lines = append(draft.Lines, line)
		draft.Total = draft.Total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return draft, nil
}

// commit procesa las líneas del borrador en orden dentro de una sola transacción:
// descuenta stock línea por línea vía el StockLedger y persiste el agregado
// Sale + líneas. Si una línea falla, el Rollback de la transacción revierte los
// descuentos ya aplicados en este mismo commit.
func (uc *SaleUseCase) commit(ctx context.Context, draft *SaleDraft) (*entity.Sale, error) {
	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ClientID:  draft.Client.ID,
		Date:      now,
		Total:     draft.Total,
		CreatedAt: now,
	}
	for _, line := range draft.Lines {
		sale.Details = append(sale.Details, &entity.SaleDetail{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		for i, line := range draft.Lines {
			if _, err := uc.ledger.ReserveAndDecrement(productRepo, line.Product.ID, line.Quantity, i); err != nil {
				return err
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// productIndex índice por ID de los productos resueltos en el borrador, para
// materializar la respuesta sin volver a consultarlos.
func productIndex(draft *SaleDraft) map[string]*entity.Product {
	byID := make(map[string]*entity.Product, len(draft.Lines))
	for _, line := range draft.Lines {
		byID[line.Product.ID] = line.Product
	}
	return byID
}
