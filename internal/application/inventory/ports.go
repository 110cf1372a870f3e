package inventory

import (
	"context"

	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para los flujos del
// ledger: si fn devuelve error ningún cambio queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		consumptionRepo repository.ConsumptionRepository,
	) error) error
}
