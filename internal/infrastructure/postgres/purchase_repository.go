package postgres

import (
	"context"
	"fmt"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL (pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una línea de compra (dentro de la transacción de la orden).
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, receipt_id, date, product_id, quantity, unit_cost, supplier, buyer, casino)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		purchase.ID, purchase.ReceiptID, purchase.Date, purchase.ProductID,
		purchase.Quantity, purchase.UnitCost, purchase.Supplier, purchase.Buyer, purchase.Casino,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// ListByCasino devuelve las líneas ordenadas por (fecha DESC, recibo_id),
// precondición del agrupador de recibos.
func (r *PurchaseRepo) ListByCasino(casino string) ([]entity.Purchase, error) {
	query := `
		SELECT c.id, c.receipt_id, c.date, c.product_id, c.quantity, c.unit_cost,
		       c.supplier, c.buyer, c.casino, COALESCE(p.name, '')
		FROM purchases c
		LEFT JOIN products p ON p.id = c.product_id
		WHERE c.casino = $1
		ORDER BY c.date DESC, c.receipt_id`
	rows, err := r.q.Query(context.Background(), query, casino)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []entity.Purchase
	for rows.Next() {
		var c entity.Purchase
		if err := rows.Scan(&c.ID, &c.ReceiptID, &c.Date, &c.ProductID, &c.Quantity,
			&c.UnitCost, &c.Supplier, &c.Buyer, &c.Casino, &c.ProductName); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ExistsForProduct indica si hay compras que referencian el producto.
func (r *PurchaseRepo) ExistsForProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM purchases WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("purchase exists for product: %w", err)
	}
	return exists, nil
}
