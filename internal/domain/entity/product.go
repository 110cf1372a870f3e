package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un insumo del inventario de un casino (sucursal).
// Quantity es la existencia actual y solo cambia a través del ledger
// (ventas, compras y consumos); la edición directa vía CRUD la sobreescribe
// sin pasar por el ledger, decisión asumida del sistema.
type Product struct {
	ID        string
	Barcode   string // código de barras, único si no está vacío
	Name      string
	Quantity  decimal.Decimal // existencia actual, nunca negativa
	Unit      string          // kg, lt, und...
	Minimum   decimal.Decimal // mínimo para reposición
	Price     decimal.Decimal // precio de venta unitario
	Casino    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
