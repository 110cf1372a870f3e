package dto

import "github.com/shopspring/decimal"

// AnalyticsRequest filtros del tablero de análisis. Fechas YYYY-MM-DD,
// ambas inclusivas; vacías = últimos 30 días.
type AnalyticsRequest struct {
	Casino    string `query:"casino"`
	StartDate string `query:"fecha_inicio"`
	EndDate   string `query:"fecha_fin"`
}

// AnalyticsResponse reporte agregado del período.
type AnalyticsResponse struct {
	Casino            string          `json:"casino"`
	StartDate         string          `json:"fecha_inicio"`
	EndDate           string          `json:"fecha_fin"`
	TotalRevenue      decimal.Decimal `json:"total_ingresos"`
	TotalCosts        decimal.Decimal `json:"total_costos"`
	GrossProfit       decimal.Decimal `json:"ganancia_bruta"`
	TotalRefreshments int64           `json:"total_refrigerios"`
	DailySales        ChartData       `json:"ventas_por_dia"`
	CostBreakdown     ChartData       `json:"desglose_costos"`
}
