package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

const (
	analyticsDateLayout = "2006-01-02"
	defaultRangeDays    = 30
)

// AnalyticsUseCase arma el reporte del tablero: ingresos por ventas, costos
// (compras + gastos + inversiones), ganancia bruta, refrigerios servidos,
// serie de ventas diarias y desglose de costos. Solo lectura; corre
// tranquilamente en paralelo con el ledger (read skew aceptado).
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// GetReport genera el reporte para un casino y un rango de fechas inclusivo.
// Internamente la fecha fin se corre un día para usarla como cota exclusiva
// y cubrir el último día completo. Un rango sin actividad devuelve ceros y
// una serie vacía, nunca error.
func (uc *AnalyticsUseCase) GetReport(ctx context.Context, in dto.AnalyticsRequest) (*dto.AnalyticsResponse, error) {
	if in.Casino == "" {
		return nil, domain.ErrInvalidInput
	}
	start, endExclusive, err := parsePeriod(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	// Consultas independientes en paralelo, mismo patrón que el resto de
	// reportes de la casa.
	type sumResult struct {
		val decimal.Decimal
		err error
	}
	run := func(fn func(context.Context, string, time.Time, time.Time) (decimal.Decimal, error)) chan sumResult {
		ch := make(chan sumResult, 1)
		go func() {
			v, err := fn(ctx, in.Casino, start, endExclusive)
			ch <- sumResult{v, err}
		}()
		return ch
	}

	revenueCh := run(uc.analyticsRepo.SalesRevenue)
	purchasesCh := run(uc.analyticsRepo.PurchasesCost)
	expensesCh := run(uc.analyticsRepo.ExpensesCost)
	investmentsCh := run(uc.analyticsRepo.InvestmentsCost)

	refreshments, err := uc.analyticsRepo.RefreshmentsServed(ctx, in.Casino, start, endExclusive)
	if err != nil {
		return nil, fmt.Errorf("analytics: refrigerios: %w", err)
	}
	daily, err := uc.analyticsRepo.DailySales(ctx, in.Casino, start, endExclusive)
	if err != nil {
		return nil, fmt.Errorf("analytics: ventas diarias: %w", err)
	}

	revenue := <-revenueCh
	purchases := <-purchasesCh
	expenses := <-expensesCh
	investments := <-investmentsCh
	for name, res := range map[string]sumResult{
		"ingresos": revenue, "compras": purchases, "gastos": expenses, "inversiones": investments,
	} {
		if res.err != nil {
			return nil, fmt.Errorf("analytics: %s: %w", name, res.err)
		}
	}

	totalCosts := purchases.val.Add(expenses.val).Add(investments.val)

	resp := &dto.AnalyticsResponse{
		Casino:            in.Casino,
		StartDate:         start.Format(analyticsDateLayout),
		EndDate:           endExclusive.AddDate(0, 0, -1).Format(analyticsDateLayout),
		TotalRevenue:      revenue.val,
		TotalCosts:        totalCosts,
		GrossProfit:       revenue.val.Sub(totalCosts),
		TotalRefreshments: refreshments,
		DailySales:        dto.ChartData{Labels: []string{}, Data: []float64{}},
		CostBreakdown: dto.ChartData{
			Labels: []string{"Compras", "Gastos", "Inversiones"},
			Data:   []float64{purchases.val.InexactFloat64(), expenses.val.InexactFloat64(), investments.val.InexactFloat64()},
		},
	}
	for _, point := range daily {
		resp.DailySales.Labels = append(resp.DailySales.Labels, point.Day.Format("02/01"))
		resp.DailySales.Data = append(resp.DailySales.Data, point.Total.InexactFloat64())
	}
	return resp, nil
}

// parsePeriod interpreta fechas YYYY-MM-DD inclusivas; por defecto los
// últimos 30 días. Devuelve (inicio, fin exclusivo).
func parsePeriod(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC().Truncate(24 * time.Hour)

	end := now
	if endStr != "" {
		parsed, err := time.Parse(analyticsDateLayout, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		end = parsed
	}
	start := end.AddDate(0, 0, -defaultRangeDays)
	if startStr != "" {
		parsed, err := time.Parse(analyticsDateLayout, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		start = parsed
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	// Fin inclusivo → cota exclusiva (< fin + 1 día) para cubrir el día entero.
	return start, end.AddDate(0, 0, 1), nil
}
