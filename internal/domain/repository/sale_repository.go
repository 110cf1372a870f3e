package repository

import "github.com/yosyfood/yosyfood-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para líneas de venta.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// ListByCasino devuelve las líneas ordenadas por (fecha DESC, recibo_id)
	// para que el agrupador por adyacencia reciba los recibos contiguos.
	ListByCasino(casino string) ([]entity.Sale, error)
	// ExistsForProduct indica si el producto tiene historial de ventas
	// (protección de borrado de insumos).
	ExistsForProduct(productID string) (bool, error)
}
