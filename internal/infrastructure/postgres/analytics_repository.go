package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de agregación de solo lectura para el tablero.
// Los rangos son [from, to); las sumas sobre rangos vacíos devuelven cero
// gracias al COALESCE.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) sum(ctx context.Context, query, casino string, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, query, casino, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func (r *AnalyticsRepo) SalesRevenue(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.sum(ctx, `
		SELECT COALESCE(SUM(total), 0)
		FROM sales WHERE casino = $1 AND date >= $2 AND date < $3`,
		casino, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum sales revenue: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) PurchasesCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.sum(ctx, `
		SELECT COALESCE(SUM(quantity * unit_cost), 0)
		FROM purchases WHERE casino = $1 AND date >= $2 AND date < $3`,
		casino, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum purchases cost: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) ExpensesCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.sum(ctx, `
		SELECT COALESCE(SUM(cost), 0)
		FROM expenses WHERE casino = $1 AND date >= $2 AND date < $3`,
		casino, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses cost: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) InvestmentsCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	total, err := r.sum(ctx, `
		SELECT COALESCE(SUM(cost), 0)
		FROM investments WHERE casino = $1 AND date >= $2 AND date < $3`,
		casino, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum investments cost: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepo) RefreshmentsServed(ctx context.Context, casino string, from, to time.Time) (int64, error) {
	var total int64
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_count), 0)
		FROM consumptions WHERE casino = $1 AND date >= $2 AND date < $3`,
		casino, from, to).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum refreshments served: %w", err)
	}
	return total, nil
}

// DailySales agrupa ingresos por día calendario, solo días con ventas,
// ascendente.
func (r *AnalyticsRepo) DailySales(ctx context.Context, casino string, from, to time.Time) ([]repository.DailySalesPoint, error) {
	rows, err := r.q.Query(ctx, `
		SELECT date_trunc('day', date) AS day, SUM(total)
		FROM sales WHERE casino = $1 AND date >= $2 AND date < $3
		GROUP BY day
		ORDER BY day`,
		casino, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily sales: %w", err)
	}
	defer rows.Close()
	var series []repository.DailySalesPoint
	for rows.Next() {
		var p repository.DailySalesPoint
		if err := rows.Scan(&p.Day, &p.Total); err != nil {
			return nil, fmt.Errorf("scan daily sales point: %w", err)
		}
		series = append(series, p)
	}
	return series, rows.Err()
}
