package dto

import "github.com/shopspring/decimal"

// ExpenseRequest entrada para crear/editar un gasto o una inversión
// (comparten forma; el desglose de costos los reporta por separado).
type ExpenseRequest struct {
	Date        string          `json:"fecha" validate:"required"` // YYYY-MM-DD
	Description string          `json:"descripcion" validate:"required"`
	Cost        decimal.Decimal `json:"costo"`
	Supplier    string          `json:"proveedor" validate:"required"`
	Buyer       string          `json:"comprador" validate:"required"`
	Casino      string          `json:"casino" validate:"required"`
}

// ExpenseResponse salida de un gasto o inversión.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"fecha"`
	Description string          `json:"descripcion"`
	Cost        decimal.Decimal `json:"costo"`
	Supplier    string          `json:"proveedor"`
	Buyer       string          `json:"comprador"`
	Casino      string          `json:"casino"`
}
