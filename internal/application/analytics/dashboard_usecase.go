// Package analytics contiene la superficie de consulta de solo lectura que
// consumen el dashboard y los reportes. Ninguna operación de este paquete
// muta catálogo ni libro de movimientos.
package analytics

import (
	"sort"

	"github.com/greenforce/gf-crm/internal/application/dto"
	appinventory "github.com/greenforce/gf-crm/internal/application/inventory"
	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// DashboardUseCase agrega métricas de inventario para colaboradores externos
// (dashboard, reportes): unidades totales, stock bajo, totales por categoría.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo}
}

// GetSummary construye el resumen de inventario.
//
// LowStock usa el predicado canónico (stock <= reorderPoint). Warnings añade
// stock > 0 por encima: es la lista "bajo pero no agotado" del dashboard,
// compuesta aquí y no soportada como segundo predicado del núcleo.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		ProductCount:   len(products),
		LowStock:       []dto.LowStockItemDTO{},
		Warnings:       []dto.LowStockItemDTO{},
		CategoryTotals: []dto.CategoryTotalDTO{},
	}

	byCategory := make(map[string]int)
	for _, p := range products {
		summary.TotalUnits += p.Stock
		byCategory[p.Category] += p.Stock
		if p.Stock == 0 {
			summary.OutOfStockCount++
		}
		if appinventory.IsLowStock(p) {
			item := dto.LowStockItemDTO{
				ProductID:    p.ID,
				Name:         p.Name,
				Category:     p.Category,
				Stock:        p.Stock,
				ReorderPoint: p.ReorderPoint,
			}
			summary.LowStock = append(summary.LowStock, item)
			if p.Stock > 0 {
				summary.Warnings = append(summary.Warnings, item)
			}
		}
	}
	summary.LowStockCount = len(summary.LowStock)

	// Orden estable de categorías para el widget de reportes.
	for _, cat := range entity.Categories() {
		if units, ok := byCategory[cat]; ok {
			summary.CategoryTotals = append(summary.CategoryTotals, dto.CategoryTotalDTO{
				Category: cat,
				Units:    units,
			})
			delete(byCategory, cat)
		}
	}
	// Categorías fuera del conjunto fijo (filas importadas) van al final.
	rest := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		rest = append(rest, cat)
	}
	sort.Strings(rest)
	for _, cat := range rest {
		summary.CategoryTotals = append(summary.CategoryTotals, dto.CategoryTotalDTO{
			Category: cat,
			Units:    byCategory[cat],
		})
	}

	return summary, nil
}
