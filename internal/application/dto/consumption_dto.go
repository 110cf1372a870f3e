package dto

import "github.com/shopspring/decimal"

// RatioLine una línea del formulario de consumo: insumo + cantidad por unidad
// producida (ej. 0.1 kg de arroz por almuerzo). Las líneas con producto vacío
// o cantidad nula se omiten en silencio, igual que las filas vacías del
// formulario original.
type RatioLine struct {
	ProductID string           `json:"producto_id"`
	Ratio     *decimal.Decimal `json:"cantidad"`
}

// ConsumptionRequest entrada para crear o actualizar un lote de consumo.
type ConsumptionRequest struct {
	Date        string      `json:"fecha" validate:"required"` // YYYY-MM-DD
	Description string      `json:"descripcion" validate:"required"`
	TotalCount  int64       `json:"cantidad_total" validate:"required,min=1"`
	Responsible string      `json:"responsable" validate:"required"`
	Casino      string      `json:"casino" validate:"required"`
	Lines       []RatioLine `json:"items"`
}

// ConsumptionItemResponse un descuento absoluto ya aplicado.
type ConsumptionItemResponse struct {
	ProductID   string          `json:"producto_id"`
	ProductName string          `json:"producto"`
	Quantity    decimal.Decimal `json:"cantidad_consumida"`
}

// ConsumptionResponse un lote de consumo persistido.
type ConsumptionResponse struct {
	ID          string                    `json:"id"`
	Date        string                    `json:"fecha"`
	Description string                    `json:"descripcion"`
	TotalCount  int64                     `json:"cantidad_total"`
	Responsible string                    `json:"responsable"`
	Casino      string                    `json:"casino"`
	Items       []ConsumptionItemResponse `json:"items"`
}
