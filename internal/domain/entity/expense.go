package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto puntual del casino. No toca inventario.
type Expense struct {
	ID          string
	Date        time.Time
	Description string
	Cost        decimal.Decimal
	Supplier    string
	Buyer       string
	Casino      string
}

// Investment es una inversión de capital. Mismo contenido que Expense pero se
// reporta por separado en el desglose de costos del análisis.
type Investment struct {
	ID          string
	Date        time.Time
	Description string
	Cost        decimal.Decimal
	Supplier    string
	Buyer       string
	Casino      string
}
