package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appconsumption "github.com/yosyfood/yosyfood-api/internal/application/consumption"
	apppurchases "github.com/yosyfood/yosyfood-api/internal/application/purchases"
	appsales "github.com/yosyfood/yosyfood-api/internal/application/sales"
	"github.com/yosyfood/yosyfood-api/internal/application/usecase"
	"github.com/yosyfood/yosyfood-api/internal/infrastructure/postgres"
	httpRouter "github.com/yosyfood/yosyfood-api/internal/interfaces/http"
	"github.com/yosyfood/yosyfood-api/pkg/config"
	"github.com/yosyfood/yosyfood-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	investmentRepo := postgres.NewInvestmentRepository(pool)
	consumptionRepo := postgres.NewConsumptionRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, saleRepo, purchaseRepo)
	salesUC := appsales.NewUseCase(txRunner, saleRepo)
	purchasesUC := apppurchases.NewUseCase(txRunner, purchaseRepo)
	consumptionUC := appconsumption.NewUseCase(txRunner, consumptionRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	investmentUC := usecase.NewInvestmentUseCase(investmentRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "YosyFood API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		SalesUC:       salesUC,
		PurchasesUC:   purchasesUC,
		ConsumptionUC: consumptionUC,
		ExpenseUC:     expenseUC,
		InvestmentUC:  investmentUC,
		AnalyticsUC:   analyticsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
