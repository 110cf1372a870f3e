package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesPoint es un punto de la serie de ventas diarias (solo días con
// al menos una venta), ordenada ascendente por día.
type DailySalesPoint struct {
	Day   time.Time
	Total decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para el tablero de análisis.
// Los rangos son [from, to) — el caso de uso ya convirtió la fecha fin
// inclusiva del usuario en cota exclusiva sumando un día.
// Todas las sumas devuelven cero (no error) para rangos sin actividad.
type AnalyticsRepository interface {
	SalesRevenue(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error)
	PurchasesCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error)
	ExpensesCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error)
	InvestmentsCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error)
	RefreshmentsServed(ctx context.Context, casino string, from, to time.Time) (int64, error)
	DailySales(ctx context.Context, casino string, from, to time.Time) ([]DailySalesPoint, error)
}
