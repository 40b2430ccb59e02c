// seed puebla el almacén local con el proveedor por defecto y un catálogo de
// demostración de equipos solares. Es idempotente: si ya existen productos no
// hace nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/greenforce/gf-crm/internal/application/dto"
	"github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/application/usecase"
	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/infrastructure/kvstore"
	"github.com/greenforce/gf-crm/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	store, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir almacén %s: %v\n", cfg.Store.Path, err)
		os.Exit(1)
	}
	defer store.Close()

	productRepo := kvstore.NewProductRepository(store)
	movementRepo := kvstore.NewMovementRepository(store)
	supplierRepo := kvstore.NewSupplierRepository(store)
	txRunner := kvstore.NewTxRunner(store)

	existing, err := productRepo.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "leer catálogo: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		fmt.Printf("el catálogo ya tiene %d productos, nada que sembrar\n", len(existing))
		return
	}

	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	ledgerUC := inventory.NewStockLedgerUseCase(txRunner, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner, ledgerUC)

	supplier, err := supplierUC.Create(dto.CreateSupplierRequest{
		Name:    "SolarTech Inc.",
		Contact: "contact@solartech.com",
		Phone:   "09034743421",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear proveedor: %v\n", err)
		os.Exit(1)
	}

	intPtr := func(n int) *int { return &n }
	dec := decimal.NewFromFloat
	demo := []dto.CreateProductRequest{
		{Name: "Monocrystalline Panel 450W", Category: entity.CategoryPanels, Cost: dec(120), Price: dec(185), Stock: intPtr(40), ReorderPoint: intPtr(10), SupplierID: supplier.ID},
		{Name: "Hybrid Inverter 5kVA", Category: entity.CategoryInverters, Cost: dec(410), Price: dec(560), Stock: intPtr(12), ReorderPoint: intPtr(5), SupplierID: supplier.ID},
		{Name: "Lithium Battery 200Ah", Category: entity.CategoryBatteries, Cost: dec(650), Price: dec(890), Stock: intPtr(8), ReorderPoint: intPtr(4), SupplierID: supplier.ID},
		{Name: "Solar Ceiling Fan 30W", Category: entity.CategoryFans, Cost: dec(35), Price: dec(55), Stock: intPtr(25), ReorderPoint: intPtr(8)},
		{Name: "All-in-one Street Light 100W", Category: entity.CategoryStreetLights, Cost: dec(48), Price: dec(75), Stock: intPtr(3), ReorderPoint: intPtr(6)},
		{Name: "Flood Light 200W", Category: entity.CategoryFloodLights, Cost: dec(22), Price: dec(38), Stock: intPtr(0), ReorderPoint: intPtr(5)},
		{Name: "MC4 Connector Pair", Category: entity.CategoryAccessories, Cost: dec(1.5), Price: dec(3), Stock: intPtr(200), ReorderPoint: intPtr(50)},
	}

	ctx := context.Background()
	for _, in := range demo {
		p, err := productUC.Create(ctx, in, "Admin")
		if err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %q: %v\n", in.Name, err)
			os.Exit(1)
		}
		fmt.Printf("producto sembrado: %s (barcode %s)\n", p.Name, p.Barcode)
	}

	fmt.Println("siembra completada")
}
