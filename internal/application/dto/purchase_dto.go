package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseCartLine una línea del carrito de compra.
type PurchaseCartLine struct {
	ProductID string          `json:"producto_id" validate:"required"`
	Quantity  decimal.Decimal `json:"cantidad"`
	UnitCost  decimal.Decimal `json:"costo_unitario"`
}

// RecordPurchaseRequest entrada para registrar una compra multi-línea.
type RecordPurchaseRequest struct {
	Cart     []PurchaseCartLine `json:"carrito" validate:"required,min=1"`
	Supplier string             `json:"proveedor" validate:"required"`
	Buyer    string             `json:"comprador" validate:"required"`
	Casino   string             `json:"casino" validate:"required"`
}

// RecordPurchaseResponse resultado de una compra registrada.
type RecordPurchaseResponse struct {
	ReceiptID string `json:"recibo_id"`
}

// PurchaseLineResponse una línea dentro de un recibo de compra.
type PurchaseLineResponse struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto"`
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitCost    decimal.Decimal `json:"costo_unitario"`
}

// PurchaseReceiptResponse un recibo de compra agrupado.
type PurchaseReceiptResponse struct {
	ReceiptID string                 `json:"recibo_id"`
	Date      time.Time              `json:"fecha"`
	Supplier  string                 `json:"proveedor"`
	Buyer     string                 `json:"comprador"`
	Total     decimal.Decimal        `json:"total_recibo"`
	Lines     []PurchaseLineResponse `json:"productos"`
}
