package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yosyfood/yosyfood-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo agregaciones de solo lectura sobre el Store, equivalentes a
// las consultas SQL del adaptador de PostgreSQL. Rangos [from, to).
type AnalyticsRepo struct{ s *Store }

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(s *Store) *AnalyticsRepo { return &AnalyticsRepo{s: s} }

func inRange(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func (r *AnalyticsRepo) SalesRevenue(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, v := range r.s.sales {
		if v.Casino == casino && inRange(v.Date, from, to) {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) PurchasesCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, c := range r.s.purchases {
		if c.Casino == casino && inRange(c.Date, from, to) {
			total = total.Add(c.LineCost())
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) ExpensesCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, e := range r.s.expenses {
		if e.Casino == casino && inRange(e.Date, from, to) {
			total = total.Add(e.Cost)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) InvestmentsCost(ctx context.Context, casino string, from, to time.Time) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, inv := range r.s.investments {
		if inv.Casino == casino && inRange(inv.Date, from, to) {
			total = total.Add(inv.Cost)
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) RefreshmentsServed(ctx context.Context, casino string, from, to time.Time) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total int64
	for _, c := range r.s.consumptions {
		if c.Casino == casino && inRange(c.Date, from, to) {
			total += c.TotalCount
		}
	}
	return total, nil
}

func (r *AnalyticsRepo) DailySales(ctx context.Context, casino string, from, to time.Time) ([]repository.DailySalesPoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	byDay := make(map[time.Time]decimal.Decimal)
	for _, v := range r.s.sales {
		if v.Casino == casino && inRange(v.Date, from, to) {
			day := v.Date.Truncate(24 * time.Hour)
			byDay[day] = byDay[day].Add(v.Total)
		}
	}
	points := make([]repository.DailySalesPoint, 0, len(byDay))
	for day, total := range byDay {
		points = append(points, repository.DailySalesPoint{Day: day, Total: total})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Day.Before(points[j].Day) })
	return points, nil
}
