package purchases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/purchases"
	"github.com/yosyfood/yosyfood-api/internal/domain"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/infrastructure/memory"
)

const testCasino = "casino-sur"

func newFixture(t *testing.T) (*purchases.UseCase, *memory.Store) {
	t.Helper()
	store := memory.New()
	uc := purchases.NewUseCase(memory.NewTxRunner(store), memory.NewPurchaseRepository(store))
	return uc, store
}

func seedProduct(t *testing.T, store *memory.Store, id, qty string) {
	t.Helper()
	err := store.CreateProduct(&entity.Product{
		ID:       id,
		Name:     "insumo " + id,
		Quantity: decimal.RequireFromString(qty),
		Unit:     "kg",
		Casino:   testCasino,
	})
	require.NoError(t, err)
}

func TestRecordPurchase_SumaStockYPersisteLineas(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "2")
	seedProduct(t, store, "p2", "0")

	out, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		Cart: []dto.PurchaseCartLine{
			{ProductID: "p1", Quantity: decimal.RequireFromString("3"), UnitCost: decimal.RequireFromString("2.5")},
			{ProductID: "p2", Quantity: decimal.RequireFromString("2"), UnitCost: decimal.RequireFromString("4")},
		},
		Supplier: "distribuidora",
		Buyer:    "jose",
		Casino:   testCasino,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ReceiptID)

	p1, _ := store.GetProductByID("p1")
	p2, _ := store.GetProductByID("p2")
	assert.True(t, p1.Quantity.Equal(decimal.RequireFromString("5")))
	assert.True(t, p2.Quantity.Equal(decimal.RequireFromString("2")))

	lines, err := store.ListPurchasesByCasino(testCasino)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0].ReceiptID, lines[1].ReceiptID, "ambas líneas comparten recibo")
}

func TestRecordPurchase_ProductoDesconocidoRevierteTodo(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "2")

	_, err := uc.RecordPurchase(context.Background(), dto.RecordPurchaseRequest{
		Cart: []dto.PurchaseCartLine{
			{ProductID: "p1", Quantity: decimal.RequireFromString("3"), UnitCost: decimal.RequireFromString("1")},
			{ProductID: "fantasma", Quantity: decimal.RequireFromString("1"), UnitCost: decimal.RequireFromString("1")},
		},
		Supplier: "distribuidora",
		Buyer:    "jose",
		Casino:   testCasino,
	})
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	p1, _ := store.GetProductByID("p1")
	assert.True(t, p1.Quantity.Equal(decimal.RequireFromString("2")), "el incremento de la primera línea se revierte")

	lines, err := store.ListPurchasesByCasino(testCasino)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRecordPurchase_ValidaEntrada(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RecordPurchaseRequest
	}{
		{"carrito vacío", dto.RecordPurchaseRequest{Supplier: "s", Buyer: "b", Casino: testCasino}},
		{"sin proveedor", dto.RecordPurchaseRequest{
			Cart:  []dto.PurchaseCartLine{{ProductID: "p1", Quantity: decimal.NewFromInt(1)}},
			Buyer: "b", Casino: testCasino,
		}},
		{"cantidad cero", dto.RecordPurchaseRequest{
			Cart:     []dto.PurchaseCartLine{{ProductID: "p1"}},
			Supplier: "s", Buyer: "b", Casino: testCasino,
		}},
		{"costo negativo", dto.RecordPurchaseRequest{
			Cart: []dto.PurchaseCartLine{{
				ProductID: "p1",
				Quantity:  decimal.NewFromInt(1),
				UnitCost:  decimal.NewFromInt(-1),
			}},
			Supplier: "s", Buyer: "b", Casino: testCasino,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordPurchase(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestListReceipts_TotalDelReciboSumaLineas(t *testing.T) {
	uc, store := newFixture(t)
	seedProduct(t, store, "p1", "0")
	seedProduct(t, store, "p2", "0")
	ctx := context.Background()

	out, err := uc.RecordPurchase(ctx, dto.RecordPurchaseRequest{
		Cart: []dto.PurchaseCartLine{
			{ProductID: "p1", Quantity: decimal.RequireFromString("3"), UnitCost: decimal.RequireFromString("2.5")},
			{ProductID: "p2", Quantity: decimal.RequireFromString("2"), UnitCost: decimal.RequireFromString("4")},
		},
		Supplier: "distribuidora",
		Buyer:    "jose",
		Casino:   testCasino,
	})
	require.NoError(t, err)

	receipts, err := uc.ListReceipts(ctx, testCasino)
	require.NoError(t, err)
	require.Len(t, receipts, 1)

	r := receipts[0]
	assert.Equal(t, out.ReceiptID, r.ReceiptID)
	assert.Equal(t, "distribuidora", r.Supplier)
	assert.Equal(t, "jose", r.Buyer)
	assert.Len(t, r.Lines, 2)
	// 3 x 2.5 + 2 x 4 = 15.5
	assert.True(t, r.Total.Equal(decimal.RequireFromString("15.5")))
}
