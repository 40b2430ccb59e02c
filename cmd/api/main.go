package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/greenforce/gf-crm/internal/application/analytics"
	"github.com/greenforce/gf-crm/internal/application/bulk"
	"github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/application/usecase"
	"github.com/greenforce/gf-crm/internal/infrastructure/kvstore"
	infrapdf "github.com/greenforce/gf-crm/internal/infrastructure/pdf"
	httpRouter "github.com/greenforce/gf-crm/internal/interfaces/http"
	"github.com/greenforce/gf-crm/pkg/config"
	"github.com/greenforce/gf-crm/pkg/logger"
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

	store, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("apertura del almacén local")
	}
	defer store.Close()

	productRepo := kvstore.NewProductRepository(store)
	movementRepo := kvstore.NewMovementRepository(store)
	supplierRepo := kvstore.NewSupplierRepository(store)
	txRunner := kvstore.NewTxRunner(store)

	stockLedgerUC := inventory.NewStockLedgerUseCase(txRunner, movementRepo)
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo, supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner, stockLedgerUC)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	bulkUC := bulk.NewBulkTransferUseCase(productRepo, txRunner)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo)

	// PDF: representación gráfica del borrador de orden de compra
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	poPDFUC := inventory.NewPurchaseOrderPDFUseCase(replenishmentUC, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if !httpRouter.RegisterSwagger(app, "./docs/swagger.json", "GreenForce CRM API") {
		log.Warn().Msg("docs/swagger.json no encontrado, UI de Swagger deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		StockLedger:   stockLedgerUC,
		Replenishment: replenishmentUC,
		POPDF:         poPDFUC,
		BulkUC:        bulkUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
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
