package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/inventory/adjustments.
// El llamador entrega la cantidad como parámetro: no hay entrada interactiva.
type AdjustStockRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required"` // in | out
	Qty       int    `json:"qty" validate:"required,gt=0"`
	Reason    string `json:"reason"`
}

// MovementResponse un movimiento del libro.
type MovementResponse struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Qty       int       `json:"qty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
}

// MovementListResponse historial de movimientos de un producto,
// del más reciente al más antiguo.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}

// LowStockItemDTO producto en o por debajo de su punto de reorden.
type LowStockItemDTO struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorder_point"`
}

// PurchaseOrderDraftResponse borrador de orden de compra (solo consultivo).
type PurchaseOrderDraftResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Qty          int             `json:"qty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	SupplierName string          `json:"supplier"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ImportResultDTO resultado de una importación CSV.
type ImportResultDTO struct {
	Imported int `json:"imported"`
}
