package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosyfood/yosyfood-api/internal/application/consumption"
	"github.com/yosyfood/yosyfood-api/internal/application/dto"
	"github.com/yosyfood/yosyfood-api/internal/application/purchases"
	"github.com/yosyfood/yosyfood-api/internal/application/sales"
	"github.com/yosyfood/yosyfood-api/internal/application/usecase"
	"github.com/yosyfood/yosyfood-api/internal/domain/entity"
	"github.com/yosyfood/yosyfood-api/internal/infrastructure/memory"
	apphttp "github.com/yosyfood/yosyfood-api/internal/interfaces/http"
)

const testCasino = "casino-central"

// buildTestApp arma la API completa sobre el Store en memoria.
func buildTestApp(store *memory.Store) *fiber.App {
	productRepo := memory.NewProductRepository(store)
	saleRepo := memory.NewSaleRepository(store)
	purchaseRepo := memory.NewPurchaseRepository(store)
	txRunner := memory.NewTxRunner(store)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(productRepo, saleRepo, purchaseRepo),
		SalesUC:       sales.NewUseCase(txRunner, saleRepo),
		PurchasesUC:   purchases.NewUseCase(txRunner, purchaseRepo),
		ConsumptionUC: consumption.NewUseCase(txRunner, memory.NewConsumptionRepository(store)),
		ExpenseUC:     usecase.NewExpenseUseCase(memory.NewExpenseRepository(store)),
		InvestmentUC:  usecase.NewInvestmentUseCase(memory.NewInvestmentRepository(store)),
		AnalyticsUC:   usecase.NewAnalyticsUseCase(memory.NewAnalyticsRepository(store)),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func seedProduct(t *testing.T, store *memory.Store, id, qty, price string) {
	t.Helper()
	require.NoError(t, store.CreateProduct(&entity.Product{
		ID:       id,
		Name:     "insumo " + id,
		Quantity: decimal.RequireFromString(qty),
		Unit:     "und",
		Price:    decimal.RequireFromString(price),
		Casino:   testCasino,
	}))
}

func TestVentas_FlujoCompleto(t *testing.T) {
	store := memory.New()
	app := buildTestApp(store)
	seedProduct(t, store, "p1", "10", "2")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/ventas/", dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("4")}},
		Payment: decimal.RequireFromString("100"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var out dto.RecordSaleResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.True(t, out.Change.Equal(decimal.RequireFromString("92")))

	resp, raw = doJSON(t, app, http.MethodGet, "/api/ventas/?casino="+testCasino, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var receipts []dto.SaleReceiptResponse
	require.NoError(t, json.Unmarshal(raw, &receipts))
	require.Len(t, receipts, 1)
	assert.Equal(t, out.ReceiptID, receipts[0].ReceiptID)
}

func TestVentas_SinStockDevuelve400(t *testing.T) {
	store := memory.New()
	app := buildTestApp(store)
	seedProduct(t, store, "p1", "2", "2")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/ventas/", dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: "p1", Quantity: decimal.RequireFromString("5")}},
		Payment: decimal.RequireFromString("100"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "OUT_OF_STOCK", errResp.Code)
}

func TestProductos_CrearYBorrarProtegido(t *testing.T) {
	store := memory.New()
	app := buildTestApp(store)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/productos/", dto.CreateProductRequest{
		Name:     "arroz",
		Quantity: decimal.RequireFromString("10"),
		Unit:     "kg",
		Price:    decimal.RequireFromString("3"),
		Casino:   testCasino,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created dto.ProductResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	// Una venta del producto lo deja con historial.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/ventas/", dto.RecordSaleRequest{
		Cart:    []dto.CartLine{{ProductID: created.ID, Quantity: decimal.RequireFromString("1")}},
		Payment: decimal.RequireFromString("10"),
		Seller:  "maria",
		Casino:  testCasino,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodDelete, "/api/productos/"+created.ID, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "HAS_HISTORY", errResp.Code)
}

func TestProductos_NoEncontrado(t *testing.T) {
	app := buildTestApp(memory.New())

	resp, raw := doJSON(t, app, http.MethodGet, "/api/productos/fantasma", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestConsumos_CrearYEliminar(t *testing.T) {
	store := memory.New()
	app := buildTestApp(store)
	seedProduct(t, store, "arroz", "20", "0")

	r := decimal.RequireFromString("0.1")
	resp, raw := doJSON(t, app, http.MethodPost, "/api/consumos/", dto.ConsumptionRequest{
		Date:        "2026-08-30",
		Description: "almuerzos",
		TotalCount:  50,
		Responsible: "chef",
		Casino:      testCasino,
		Lines:       []dto.RatioLine{{ProductID: "arroz", Ratio: &r}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created dto.ConsumptionResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	p, _ := store.GetProductByID("arroz")
	require.True(t, p.Quantity.Equal(decimal.RequireFromString("15")))

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/consumos/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	p, _ = store.GetProductByID("arroz")
	assert.True(t, p.Quantity.Equal(decimal.RequireFromString("20")), "el borrado restaura el inventario")
}

func TestAnalisis_CasinoRequerido(t *testing.T) {
	app := buildTestApp(memory.New())

	resp, raw := doJSON(t, app, http.MethodGet, "/api/analisis/", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}
