package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenforce/gf-crm/internal/application/dto"
	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// minRestockBatch lote mínimo de reposición aunque el déficit sea menor.
const minRestockBatch = 10

// ReplenishmentUseCase detecta productos bajo punto de reorden y genera
// borradores de orden de compra. Los borradores son consultivos: nunca se
// persisten, así que repetir la detección no duplica nada.
type ReplenishmentUseCase struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewReplenishmentUseCase construye el caso de uso.
func NewReplenishmentUseCase(
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{productRepo: productRepo, supplierRepo: supplierRepo}
}

// IsLowStock predicado canónico de stock bajo: stock <= punto de reorden.
// Quien necesite distinguir "agotado" (stock == 0) lo compone por su cuenta.
func IsLowStock(p *entity.Product) bool {
	return p.Stock <= p.ReorderPoint
}

// LowStockList devuelve los productos en o por debajo de su punto de reorden.
func (uc *ReplenishmentUseCase) LowStockList() ([]dto.LowStockItemDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItemDTO, 0)
	for _, p := range products {
		if !IsLowStock(p) {
			continue
		}
		items = append(items, dto.LowStockItemDTO{
			ProductID:    p.ID,
			Name:         p.Name,
			Category:     p.Category,
			Stock:        p.Stock,
			ReorderPoint: p.ReorderPoint,
		})
	}
	return items, nil
}

// DraftPurchaseOrder genera el borrador de reposición para un producto.
// Cantidad = max(10, 2*reorderPoint - stock); costo total = costo * cantidad.
// El proveedor se resuelve: vinculado al producto, si no el primero del
// directorio, si no "unknown".
func (uc *ReplenishmentUseCase) DraftPurchaseOrder(productID string) (*dto.PurchaseOrderDraftResponse, error) {
	draft, _, _, err := uc.draft(productID)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(draft), nil
}

// draft construye el borrador junto con el producto y el proveedor resueltos
// (el proveedor puede ser nil). Compartido con la generación de PDF.
func (uc *ReplenishmentUseCase) draft(productID string) (*entity.PurchaseOrderDraft, *entity.Product, *entity.Supplier, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, nil, err
	}
	if product == nil {
		return nil, nil, nil, domain.ErrNotFound
	}

	qty := 2*product.ReorderPoint - product.Stock
	if qty < minRestockBatch {
		qty = minRestockBatch
	}

	supplier, err := uc.resolveSupplier(product)
	if err != nil {
		return nil, nil, nil, err
	}
	supplierName := "unknown"
	if supplier != nil {
		supplierName = supplier.Name
	}

	draft := &entity.PurchaseOrderDraft{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		Qty:          qty,
		UnitCost:     product.Cost,
		TotalCost:    product.Cost.Mul(decimal.NewFromInt(int64(qty))),
		SupplierName: supplierName,
		Status:       entity.PurchaseOrderStatusDraft,
		CreatedAt:    time.Now(),
	}
	return draft, product, supplier, nil
}

// resolveSupplier: proveedor vinculado, o el primero del directorio (también
// cuando la referencia quedó colgante), o nil con directorio vacío.
func (uc *ReplenishmentUseCase) resolveSupplier(product *entity.Product) (*entity.Supplier, error) {
	if product.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(product.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier != nil {
			return supplier, nil
		}
	}
	list, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func toPurchaseOrderResponse(d *entity.PurchaseOrderDraft) *dto.PurchaseOrderDraftResponse {
	return &dto.PurchaseOrderDraftResponse{
		ID:           d.ID,
		ProductID:    d.ProductID,
		ProductName:  d.ProductName,
		Qty:          d.Qty,
		UnitCost:     d.UnitCost,
		TotalCost:    d.TotalCost,
		SupplierName: d.SupplierName,
		Status:       d.Status,
		CreatedAt:    d.CreatedAt,
	}
}
