package receipt_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/domain/receipt"
)

func saleLine(reciboID, producto string, total float64) entity.Sale {
	return entity.Sale{
		ReceiptID: reciboID,
		Date:      time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		ProductID: producto,
		Quantity:  decimal.NewFromInt(1),
		Total:     decimal.NewFromFloat(total),
		Payment:   decimal.NewFromInt(20),
		Change:    decimal.NewFromInt(2),
		Seller:    "maria",
		Casino:    "Casino 1",
	}
}

// Dos recibos contiguos: [(R1,A,$5),(R1,B,$3),(R2,C,$10)] deben producir dos
// grupos con totales $8 y $10, preservando el orden de líneas.
func TestGroupSales_DosRecibos(t *testing.T) {
	lines := []entity.Sale{
		saleLine("R1", "prod-a", 5),
		saleLine("R1", "prod-b", 3),
		saleLine("R2", "prod-c", 10),
	}

	groups := receipt.GroupSales(lines)

	require.Len(t, groups, 2)
	assert.Equal(t, "R1", groups[0].ReceiptID)
	assert.True(t, groups[0].Total.Equal(decimal.NewFromInt(8)), "total R1 = 8, got %s", groups[0].Total)
	require.Len(t, groups[0].Lines, 2)
	assert.Equal(t, "prod-a", groups[0].Lines[0].ProductID)
	assert.Equal(t, "prod-b", groups[0].Lines[1].ProductID)

	assert.Equal(t, "R2", groups[1].ReceiptID)
	assert.True(t, groups[1].Total.Equal(decimal.NewFromInt(10)))
	require.Len(t, groups[1].Lines, 1)
}

// La cabecera del grupo sale de la primera línea (pago, cambio, vendedor, fecha).
func TestGroupSales_CabeceraDePrimeraLinea(t *testing.T) {
	first := saleLine("R9", "prod-a", 4)
	second := saleLine("R9", "prod-b", 6)
	second.Seller = "otro" // no debería pisar la cabecera

	groups := receipt.GroupSales([]entity.Sale{first, second})

	require.Len(t, groups, 1)
	assert.Equal(t, "maria", groups[0].Seller)
	assert.True(t, groups[0].Payment.Equal(first.Payment))
	assert.True(t, groups[0].Change.Equal(first.Change))
	assert.Equal(t, first.Date, groups[0].Date)
}

// Entrada SIN ordenar: filas del mismo recibo intercaladas con otro recibo.
// El barrido por adyacencia parte R1 en dos grupos en vez de fallar; este test
// documenta la precondición de orden (los callers deben ordenar por recibo).
func TestGroupSales_EntradaSinOrdenarParteElRecibo(t *testing.T) {
	lines := []entity.Sale{
		saleLine("R1", "prod-a", 5),
		saleLine("R2", "prod-c", 10),
		saleLine("R1", "prod-b", 3),
	}

	groups := receipt.GroupSales(lines)

	assert.Len(t, groups, 3, "sin pre-orden el mismo recibo queda partido")
}

func TestGroupSales_Vacio(t *testing.T) {
	assert.Empty(t, receipt.GroupSales(nil))
}

func TestGroupPurchases_TotalPorCostoUnitario(t *testing.T) {
	lines := []entity.Purchase{
		{
			ReceiptID: "C1",
			Date:      time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC),
			ProductID: "prod-a",
			Quantity:  decimal.NewFromInt(3),
			UnitCost:  decimal.NewFromFloat(2.5),
			Supplier:  "distribuidora sur",
			Buyer:     "pedro",
		},
		{
			ReceiptID: "C1",
			ProductID: "prod-b",
			Quantity:  decimal.NewFromInt(2),
			UnitCost:  decimal.NewFromInt(4),
			Supplier:  "distribuidora sur",
			Buyer:     "pedro",
		},
	}

	groups := receipt.GroupPurchases(lines)

	require.Len(t, groups, 1)
	// 3×2.5 + 2×4 = 15.5
	assert.True(t, groups[0].Total.Equal(decimal.NewFromFloat(15.5)), "got %s", groups[0].Total)
	assert.Equal(t, "distribuidora sur", groups[0].Supplier)
	assert.Equal(t, "pedro", groups[0].Buyer)
}
