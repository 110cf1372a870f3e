package repository

import "github.com/yosyfood/yosyfood-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para líneas de compra.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	// ListByCasino devuelve las líneas ordenadas por (fecha DESC, recibo_id),
	// precondición del agrupador por adyacencia.
	ListByCasino(casino string) ([]entity.Purchase, error)
	ExistsForProduct(productID string) (bool, error)
}
