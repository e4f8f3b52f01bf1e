package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la venta completa: cabecera y líneas en el orden enviado.
// line_no conserva el orden de las líneas; dentro de una transacción, la venta
// comparte suerte con los descuentos de stock hechos por el mismo caller.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, client_id, date, total, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.Date, sale.Total, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, d := range sale.Details {
		detailQuery := `
			INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, line_no)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.q.Exec(context.Background(), detailQuery,
			d.ID, d.SaleID, d.ProductID, d.Quantity, d.UnitPrice, i,
		)
		if err != nil {
			return fmt.Errorf("insert sale detail: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT id, client_id, date, total, created_at FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ClientID, &s.Date, &s.Total, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetDetailsBySaleID obtiene las líneas de una venta en su orden original.
func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price
		FROM sale_details WHERE sale_id = $1 ORDER BY line_no`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByClient lista las ventas de un cliente, más recientes primero.
func (r *SaleRepo) ListByClient(clientID string) ([]*entity.Sale, error) {
	return r.list(`SELECT id, client_id, date, total, created_at FROM sales WHERE client_id = $1 ORDER BY date DESC`, clientID)
}

// List lista todas las ventas, más recientes primero.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	return r.list(`SELECT id, client_id, date, total, created_at FROM sales ORDER BY date DESC`)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ClientID, &s.Date, &s.Total, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
