package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/usecase"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/infrastructure/memory"
)

func newAnalyticsFixture(t *testing.T) (*usecase.AnalyticsUseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	return usecase.NewAnalyticsUseCase(memory.NewAnalyticsRepository(store)), store
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestGetReport_AgregaIngresosCostosYGanancia(t *testing.T) {
	uc, store := newAnalyticsFixture(t)

	// Dos días de ventas, una compra, un gasto, una inversión y un lote de
	// refrigerios dentro del rango; todo de otro casino queda fuera.
	require.NoError(t, store.CreateSale(&entity.Sale{
		ID: "v1", ReceiptID: "r1", Date: day("2026-08-10"),
		Total: decimal.RequireFromString("100"), Casino: testCasino,
	}))
	require.NoError(t, store.CreateSale(&entity.Sale{
		ID: "v2", ReceiptID: "r2", Date: day("2026-08-12"),
		Total: decimal.RequireFromString("50"), Casino: testCasino,
	}))
	require.NoError(t, store.CreateSale(&entity.Sale{
		ID: "v3", ReceiptID: "r3", Date: day("2026-08-12"),
		Total: decimal.RequireFromString("999"), Casino: "otro",
	}))
	require.NoError(t, store.CreatePurchase(&entity.Purchase{
		ID: "c1", ReceiptID: "rc1", Date: day("2026-08-11"),
		Quantity: decimal.RequireFromString("4"), UnitCost: decimal.RequireFromString("10"),
		Casino: testCasino,
	}))
	require.NoError(t, store.CreateExpense(&entity.Expense{
		ID: "g1", Date: day("2026-08-11"), Cost: decimal.RequireFromString("20"), Casino: testCasino,
	}))
	require.NoError(t, store.CreateInvestment(&entity.Investment{
		ID: "i1", Date: day("2026-08-11"), Cost: decimal.RequireFromString("15"), Casino: testCasino,
	}))
	require.NoError(t, store.CreateHeader(&entity.Consumption{
		ID: "l1", Date: day("2026-08-12"), TotalCount: 80, Casino: testCasino,
	}))

	out, err := uc.GetReport(context.Background(), dto.AnalyticsRequest{
		Casino:    testCasino,
		StartDate: "2026-08-10",
		EndDate:   "2026-08-12",
	})
	require.NoError(t, err)

	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("150")))
	// compras 40 + gastos 20 + inversiones 15
	assert.True(t, out.TotalCosts.Equal(decimal.RequireFromString("75")))
	assert.True(t, out.GrossProfit.Equal(decimal.RequireFromString("75")))
	assert.EqualValues(t, 80, out.TotalRefreshments)
	assert.Equal(t, "2026-08-10", out.StartDate)
	assert.Equal(t, "2026-08-12", out.EndDate, "la fecha fin reportada sigue siendo la inclusiva")

	require.Equal(t, []string{"10/08", "12/08"}, out.DailySales.Labels, "solo días con ventas, ascendente")
	assert.Equal(t, []float64{100, 50}, out.DailySales.Data)

	assert.Equal(t, []string{"Compras", "Gastos", "Inversiones"}, out.CostBreakdown.Labels)
	assert.Equal(t, []float64{40, 20, 15}, out.CostBreakdown.Data)
}

func TestGetReport_LaFechaFinCubreElDiaCompleto(t *testing.T) {
	uc, store := newAnalyticsFixture(t)

	// Venta a media tarde del último día del rango.
	require.NoError(t, store.CreateSale(&entity.Sale{
		ID: "v1", ReceiptID: "r1",
		Date:  day("2026-08-12").Add(15 * time.Hour),
		Total: decimal.RequireFromString("30"), Casino: testCasino,
	}))

	out, err := uc.GetReport(context.Background(), dto.AnalyticsRequest{
		Casino:    testCasino,
		StartDate: "2026-08-10",
		EndDate:   "2026-08-12",
	})
	require.NoError(t, err)
	assert.True(t, out.TotalRevenue.Equal(decimal.RequireFromString("30")))
}

func TestGetReport_RangoSinActividadDevuelveCeros(t *testing.T) {
	uc, _ := newAnalyticsFixture(t)

	out, err := uc.GetReport(context.Background(), dto.AnalyticsRequest{
		Casino:    testCasino,
		StartDate: "2020-01-01",
		EndDate:   "2020-01-31",
	})
	require.NoError(t, err)

	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.TotalCosts.IsZero())
	assert.True(t, out.GrossProfit.IsZero())
	assert.Zero(t, out.TotalRefreshments)
	assert.Empty(t, out.DailySales.Labels)
	assert.NotNil(t, out.DailySales.Labels, "serie vacía, no nula, para el frontend")
}

func TestGetReport_Validaciones(t *testing.T) {
	uc, _ := newAnalyticsFixture(t)
	ctx := context.Background()

	t.Run("casino requerido", func(t *testing.T) {
		_, err := uc.GetReport(ctx, dto.AnalyticsRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("fecha malformada", func(t *testing.T) {
		_, err := uc.GetReport(ctx, dto.AnalyticsRequest{Casino: testCasino, StartDate: "12/08/2026"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("inicio posterior al fin", func(t *testing.T) {
		_, err := uc.GetReport(ctx, dto.AnalyticsRequest{
			Casino: testCasino, StartDate: "2026-08-12", EndDate: "2026-08-10",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
