package postgres

import (
	"context"
	"fmt"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una línea de venta (siempre dentro de la transacción del
// checkout; nunca se insertan líneas sueltas).
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, receipt_id, date, product_id, quantity, total, payment, change, seller, casino)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ReceiptID, sale.Date, sale.ProductID, sale.Quantity,
		sale.Total, sale.Payment, sale.Change, sale.Seller, sale.Casino,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByCasino devuelve las líneas con nombre de producto, ordenadas por
// (fecha DESC, recibo_id): el orden que el agrupador de recibos exige para
// que las líneas de un mismo recibo queden contiguas.
func (r *SaleRepo) ListByCasino(casino string) ([]entity.Sale, error) {
	query := `
		SELECT s.id, s.receipt_id, s.date, s.product_id, s.quantity, s.total,
		       s.payment, s.change, s.seller, s.casino, COALESCE(p.name, '')
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.casino = $1
		ORDER BY s.date DESC, s.receipt_id`
	rows, err := r.q.Query(context.Background(), query, casino)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ReceiptID, &s.Date, &s.ProductID, &s.Quantity,
			&s.Total, &s.Payment, &s.Change, &s.Seller, &s.Casino, &s.ProductName); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ExistsForProduct indica si hay ventas que referencian el producto
// (protección de borrado de insumos).
func (r *SaleRepo) ExistsForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM sales WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sale exists for product: %w", err)
	}
	return exists, nil
}
