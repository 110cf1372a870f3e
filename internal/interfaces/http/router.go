package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yosyfood/yosyfood-api/internal/application/consumption"
	"github.com/yosyfood/yosyfood-api/internal/application/purchases"
	"github.com/yosyfood/yosyfood-api/internal/application/sales"
	"github.com/yosyfood/yosyfood-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	SalesUC       *sales.UseCase
	PurchasesUC   *purchases.UseCase
	ConsumptionUC *consumption.UseCase
	ExpenseUC     *usecase.ExpenseUseCase
	InvestmentUC  *usecase.InvestmentUseCase
	AnalyticsUC   *usecase.AnalyticsUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/buscar", productHandler.FindByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	salesGroup := api.Group("/ventas")
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.ListReceipts)

	purchasesGroup := api.Group("/compras")
	purchaseHandler := NewPurchaseHandler(deps.PurchasesUC)
	purchasesGroup.Post("/", purchaseHandler.Record)
	purchasesGroup.Get("/", purchaseHandler.ListReceipts)

	consumptions := api.Group("/consumos")
	consumptionHandler := NewConsumptionHandler(deps.ConsumptionUC)
	consumptions.Post("/", consumptionHandler.Create)
	consumptions.Get("/", consumptionHandler.List)
	consumptions.Get("/:id", consumptionHandler.Get)
	consumptions.Put("/:id", consumptionHandler.Update)
	consumptions.Delete("/:id", consumptionHandler.Delete)

	expenses := api.Group("/gastos")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	investments := api.Group("/inversiones")
	investmentHandler := NewInvestmentHandler(deps.InvestmentUC)
	investments.Post("/", investmentHandler.Create)
	investments.Get("/", investmentHandler.List)
	investments.Put("/:id", investmentHandler.Update)
	investments.Delete("/:id", investmentHandler.Delete)

	analytics := api.Group("/analisis")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/", analyticsHandler.GetReport)
}
