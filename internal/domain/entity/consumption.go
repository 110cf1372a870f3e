package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consumption es un lote de refrigerios producidos (ej. 50 almuerzos) cuyo
// uso de insumos se descuenta del inventario. El lote es dueño exclusivo de
// sus Items: borrarlo implica revertir y borrar cada item explícitamente,
// aquí no hay cascada de ORM.
type Consumption struct {
	ID          string
	Date        time.Time
	Description string
	TotalCount  int64 // unidades producidas (cantidad_total)
	Responsible string
	Casino      string
	Items       []ConsumptionItem
}

// ConsumptionItem es el descuento absoluto de un insumo para todo el lote.
// Se persiste ya multiplicado (ratio × TotalCount); el ratio original no se
// guarda y solo puede re-derivarse dividiendo por TotalCount.
type ConsumptionItem struct {
	ID            string
	ConsumptionID string
	ProductID     string
	Quantity      decimal.Decimal

	// ProductName se llena en lecturas; no se persiste aquí.
	ProductName string
}
