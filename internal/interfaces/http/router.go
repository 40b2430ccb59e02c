package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/greenforce/gf-crm/internal/application/analytics"
	"github.com/greenforce/gf-crm/internal/application/bulk"
	"github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	SupplierUC    *usecase.SupplierUseCase
	StockLedger   *inventory.StockLedgerUseCase
	Replenishment *inventory.ReplenishmentUseCase
	POPDF         *inventory.PurchaseOrderPDFUseCase
	BulkUC        *bulk.BulkTransferUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token; con secreto vacío corre en modo demo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.StockLedger, deps.Replenishment, deps.POPDF)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id/movements", inventoryHandler.ListMovements)
	products.Get("/:id/purchase-order", inventoryHandler.DraftPurchaseOrder)
	products.Get("/:id/purchase-order/pdf", inventoryHandler.PurchaseOrderPDF)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	bulkHandler := NewBulkHandler(deps.BulkUC)
	invGroup.Post("/adjustments", inventoryHandler.AdjustStock)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Post("/import", RequireRole("admin"), bulkHandler.Import)
	invGroup.Get("/export", bulkHandler.Export)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)

	// Dashboard (protegido, solo lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
