package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine una línea del carrito de venta.
type CartLine struct {
	ProductID string          `json:"producto_id" validate:"required"`
	Quantity  decimal.Decimal `json:"cantidad"`
}

// RecordSaleRequest entrada para registrar una venta multi-línea.
type RecordSaleRequest struct {
	Cart    []CartLine      `json:"carrito" validate:"required,min=1"`
	Payment decimal.Decimal `json:"pago"`
	Seller  string          `json:"vendedor" validate:"required"`
	Casino  string          `json:"casino" validate:"required"`
}

// RecordSaleResponse resultado de una venta registrada.
type RecordSaleResponse struct {
	ReceiptID string          `json:"recibo_id"`
	Total     decimal.Decimal `json:"total"`
	Change    decimal.Decimal `json:"cambio"`
}

// SaleLineResponse una línea dentro de un recibo de venta.
type SaleLineResponse struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto"`
	Quantity    decimal.Decimal `json:"cantidad"`
	Total       decimal.Decimal `json:"total"`
}

// SaleReceiptResponse un recibo de venta agrupado.
type SaleReceiptResponse struct {
	ReceiptID string             `json:"recibo_id"`
	Date      time.Time          `json:"fecha"`
	Seller    string             `json:"vendedor"`
	Payment   decimal.Decimal    `json:"pago"`
	Change    decimal.Decimal    `json:"cambio"`
	Total     decimal.Decimal    `json:"total_recibo"`
	Lines     []SaleLineResponse `json:"productos"`
}
