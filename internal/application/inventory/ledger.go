package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// Ledger es el único punto de mutación de existencias. Se construye por
// transacción, sobre el ProductRepository atado a esa tx, de modo que cada
// ajuste bloquea la fila (SELECT FOR UPDATE) y queda pendiente del Commit
// del TxRunner que lo envuelve.
type Ledger struct {
	products repository.ProductRepository
}

// NewLedger construye el ledger sobre un repositorio (normalmente tx-bound).
func NewLedger(products repository.ProductRepository) *Ledger {
	return &Ledger{products: products}
}

// Adjust suma delta a la existencia del producto. Rechaza con
// domain.ErrInsufficientStock cuando delta es negativo y la existencia
// resultante quedaría bajo cero; en ese caso no muta nada.
// Devuelve el producto con la cantidad ya ajustada.
func (l *Ledger) Adjust(productID string, delta decimal.Decimal) (*entity.Product, error) {
	product, err := l.products.GetForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	newQty := product.Quantity.Add(delta)
	if delta.IsNegative() && newQty.IsNegative() {
		return nil, domain.ErrInsufficientStock
	}
	if err := l.products.UpdateQuantity(product.ID, newQty); err != nil {
		return nil, err
	}
	product.Quantity = newQty
	product.UpdatedAt = time.Now()
	return product, nil
}

// Reverse devuelve delta unidades al inventario (inverso exacto de un ajuste
// negativo previo). Si el producto ya no existe hace no-op silencioso: el
// registro histórico puede referenciar insumos borrados y revertir no debe
// tumbar toda la operación. Brecha de integridad conocida, cubierta en tests.
func (l *Ledger) Reverse(productID string, amount decimal.Decimal) error {
	product, err := l.products.GetForUpdate(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	return l.products.UpdateQuantity(product.ID, product.Quantity.Add(amount))
}
