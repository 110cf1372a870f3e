package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase es una línea de compra de insumos. Las líneas de una misma orden
// comparten ReceiptID, Supplier, Buyer y Date.
type Purchase struct {
	ID        string
	ReceiptID string
	Date      time.Time
	ProductID string
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
	Supplier  string
	Buyer     string
	Casino    string

	// ProductName se llena en lecturas (JOIN con products); no se persiste aquí.
	ProductName string
}

// LineCost devuelve el costo de la línea (cantidad × costo unitario).
func (p Purchase) LineCost() decimal.Decimal {
	return p.Quantity.Mul(p.UnitCost)
}
