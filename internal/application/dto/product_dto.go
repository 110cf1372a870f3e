package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un insumo.
type CreateProductRequest struct {
	Barcode  string          `json:"codigo_barras"`
	Name     string          `json:"nombre" validate:"required,min=1,max=100"`
	Quantity decimal.Decimal `json:"cantidad"`
	Unit     string          `json:"unidad" validate:"required"`
	Minimum  decimal.Decimal `json:"minimo"`
	Price    decimal.Decimal `json:"precio"`
	Casino   string          `json:"casino" validate:"required"`
}

// UpdateProductRequest entrada para editar un insumo. Cantidad incluida:
// la edición directa sobreescribe la existencia sin pasar por el ledger
// (el sistema confía en las correcciones manuales).
type UpdateProductRequest struct {
	Barcode  *string          `json:"codigo_barras"`
	Name     *string          `json:"nombre"`
	Quantity *decimal.Decimal `json:"cantidad"`
	Unit     *string          `json:"unidad"`
	Minimum  *decimal.Decimal `json:"minimo"`
	Price    *decimal.Decimal `json:"precio"`
	Casino   *string          `json:"casino"`
}

// ProductResponse salida de un insumo.
type ProductResponse struct {
	ID        string          `json:"id"`
	Barcode   string          `json:"codigo_barras"`
	Name      string          `json:"nombre"`
	Quantity  decimal.Decimal `json:"cantidad"`
	Unit      string          `json:"unidad"`
	Minimum   decimal.Decimal `json:"minimo"`
	Price     decimal.Decimal `json:"precio"`
	Casino    string          `json:"casino"`
	UpdatedAt time.Time       `json:"updated_at"`
}
