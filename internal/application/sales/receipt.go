package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain"
)

// SaleReceiptPDF genera el comprobante PDF de una venta ya registrada.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrSaleNotFound     si la venta no existe.
func (uc *SaleUseCase) SaleReceiptPDF(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrSaleNotFound
	}

	details, err := uc.saleRepo.GetDetailsBySaleID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener detalles: %w", err)
	}
	sale.Details = details

	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener cliente: %w", err)
	}

	lines := make([]ReceiptLine, 0, len(details))
	for _, d := range details {
		line := ReceiptLine{Detail: d, ProductName: "Producto " + d.ProductID}
		if product, pErr := uc.productRepo.GetByID(d.ProductID); pErr == nil && product != nil {
			line.ProductName = product.Name
			line.ProductSKU = product.SKU
		}
		lines = append(lines, line)
	}

	pdfBytes, err = uc.receipts.GenerateReceiptPDF(ctx, sale, client, lines)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta_%s.pdf", sale.ID), nil
}
