package dto

// CategoryTotalDTO total de unidades en stock por categoría.
type CategoryTotalDTO struct {
	Category string `json:"category"`
	Units    int    `json:"units"`
}

// DashboardSummaryDTO resumen de inventario para el dashboard y los reportes.
// Consulta de solo lectura: construirla jamás toca catálogo ni libro.
//
// LowStock usa el predicado canónico stock <= reorderPoint; Warnings añade la
// distinción stock > 0 que el dashboard original aplica para separar "bajo"
// de "agotado".
type DashboardSummaryDTO struct {
	TotalUnits      int                `json:"total_units"`
	ProductCount    int                `json:"product_count"`
	LowStockCount   int                `json:"low_stock_count"`
	LowStock        []LowStockItemDTO  `json:"low_stock"`
	Warnings        []LowStockItemDTO  `json:"warnings"`
	OutOfStockCount int                `json:"out_of_stock_count"`
	CategoryTotals  []CategoryTotalDTO `json:"category_totals"`
}
