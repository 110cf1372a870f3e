package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/sales"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/infrastructure/memory"
)

const testCasino = "casino-norte"

func newFixture(t *testing.T) (*sales.UseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	uc := sales.NewUseCase(memory.NewTxRunner(store), memory.NewSaleRepository(store))
	return uc, store
}

func seedProduct(t *testing.T, store *memory.Store, id string, qty, price string) {
	t.Helper()
	err := store.CreateProduct(&entity.Product{
		ID:       id,
		Name:     "insumo " + id,
		Quantity: decimal.RequireFromString(qty),
		Unit:     "und",
		Price:    decimal.RequireFromString(price),
		Casino:   testCasino,
	})
	require.NoError(t, err)
}

func TestRecordSale_DescuentaStockYCalculaCambio(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "10", "2")

	out, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("4")}},
		Payment: decimal.RequireFromString("100"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("8")), "total = precio x cantidad")
	assert.True(t, out.Change.Equal(decimal.RequireFromString("92")), "cambio = pago - total")
	assert.NotEmpty(t, out.ReceiptID)

	p, err := store.GetProductByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.RequireFromString("6")), "existencia descontada")

	lines, err := store.ListSalesByCasino(testCasino)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, out.ReceiptID, lines[0].ReceiptID)
}

func TestRecordSale_StockInsuficienteNoMutaNada(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "6", "2")

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("10")}},
		Payment: decimal.RequireFromString("100"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, err := store.GetProductByID("p1")
	require.NoError(t, err)
	assert.True(t, p.Quantity.Equal(decimal.RequireFromString("6")), "la existencia no cambia")

	lines, err := store.ListSalesByCasino(testCasino)
	require.NoError(t, err)
	assert.Empty(t, lines, "no queda ninguna línea de venta")
}

func TestRecordSale_FalloEnSegundaLineaRevierteLaPrimera(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "10", "2")
	seedProduct(t, store, "p2", "1", "5")

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Cart: []dto.CartLine{
			{ProductID: "p1", Quantity: decimal.RequireFromString("3")},
			{ProductID: "p2", Quantity: decimal.RequireFromString("2")},
		},
		Payment: decimal.RequireFromString("100"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	p1, _ := store.GetProductByID("p1")
	p2, _ := store.GetProductByID("p2")
	assert.True(t, p1.Quantity.Equal(decimal.RequireFromString("10")), "el descuento de la primera línea se revierte")
	assert.True(t, p2.Quantity.Equal(decimal.RequireFromString("1")))
}

func TestRecordSale_ProductoInexistenteSeTrataComoSinStock(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "fantasma", Quantity: decimal.RequireFromString("1")}},
		Payment: decimal.RequireFromString("10"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRecordSale_PagoInsuficienteRevierteElDescuento(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "10", "5")

	_, err := uc.RecordSale(context.Background(), dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("4")}},
		Payment: decimal.RequireFromString("10"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientPayment)

	p, _ := store.GetProductByID("p1")
	assert.True(t, p.Quantity.Equal(decimal.RequireFromString("10")), "rollback restaura la existencia")
}

func TestRecordSale_ValidaEntrada(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RecordSaleRequest
	}{
		{"carrito vacío", dto.RecordSaleRequest{Seller: "m", Casino: testCasino}},
		{"sin vendedor", dto.RecordSaleRequest{
			Cart:   []dto.CartLine{{ProductID: "p1", Quantity: decimal.NewFromInt(1)}},
			Casino: testCasino,
		}},
		{"cantidad cero", dto.RecordSaleRequest{
			Cart:   []dto.CartLine{{ProductID: "p1"}},
			Seller: "m", Casino: testCasino,
		}},
		{"cantidad negativa", dto.RecordSaleRequest{
			Cart:   []dto.CartLine{{ProductID: "p1", Quantity: decimal.NewFromInt(-2)}},
			Seller: "m", Casino: testCasino,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordSale(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestListReceipts_AgrupaPorRecibo(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "100", "2")
	seedProduct(t, store, "p2", "100", "3")

	ctx := context.Background()
	first, err := uc.RecordSale(ctx, dto.RecordSaleRequest{
		Cart: []dto.CartLine{
			{ProductID: "p1", Quantity: decimal.RequireFromString("2")},
			{ProductID: "p2", Quantity: decimal.RequireFromString("1")},
		},
		Payment: decimal.RequireFromString("20"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.NoError(t, err)
	second, err := uc.RecordSale(ctx, dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("5")}},
		Payment: decimal.RequireFromString("10"),
		Seller:  "jose",
		Casino:  testCasino,
	})
	require.NoError(t, err)

	receipts, err := uc.ListReceipts(ctx, testCasino)
	require.NoError(t, err)
	require.Len(t, receipts, 2, "dos ventas = dos recibos")

	byID := map[string]dto.SaleReceiptResponse{}
	for _, r := range receipts {
		byID[r.ReceiptID] = r
	}
	require.Contains(t, byID, first.ReceiptID)
	require.Contains(t, byID, second.ReceiptID)

	multi := byID[first.ReceiptID]
	assert.Len(t, multi.Lines, 2)
	assert.True(t, multi.Total.Equal(decimal.RequireFromString("7")), "total del recibo = suma de líneas")
	assert.Equal(t, "maria", multi.Seller)

	single := byID[second.ReceiptID]
	assert.Len(t, single.Lines, 1)
	assert.True(t, single.Total.Equal(decimal.RequireFromString("10")))
}

func TestListReceipts_CasinoSinVentas(t *testing.T) {
	uc, _ := newFixture(t)
	receipts, err := uc.ListReceipts(context.Background(), "casino-vacio")
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

// Dos ventas muy seguidas del mismo producto no deben perder ninguno de los
// dos descuentos.
func TestRecordSale_DescuentosConsecutivosSeAcumulan(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "10", "1")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := uc.RecordSale(ctx, dto.RecordSaleRequest{
			Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("3")}},
			Payment: decimal.RequireFromString("10"),
			Seller:  "maria",
			Casino:  testCasino,
		})
		require.NoError(t, err)
	}

	p, _ := store.GetProductByID("p1")
	assert.True(t, p.Quantity.Equal(decimal.RequireFromString("4")))
}
