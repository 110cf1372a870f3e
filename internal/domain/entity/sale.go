package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una línea de venta. Todas las líneas de un mismo checkout comparten
// ReceiptID, Payment, Change, Seller y Date (desnormalizados por línea).
type Sale struct {
	ID        string
	ReceiptID string
	Date      time.Time
	ProductID string
	Quantity  decimal.Decimal
	Total     decimal.Decimal // precio unitario × cantidad de la línea
	Payment   decimal.Decimal // pago recibido por todo el recibo
	Change    decimal.Decimal // cambio entregado por todo el recibo
	Seller    string
	Casino    string

	// ProductName se llena en lecturas (JOIN con products); no se persiste aquí.
	ProductName string
}
