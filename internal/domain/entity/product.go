package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo de equipos solares.
// ID y Barcode son inmutables tras la creación; Stock solo cambia a través del
// libro de movimientos, salvo correcciones directas vía edición.
type Product struct {
	ID           string          `json:"id"`
	Barcode      string          `json:"barcode"` // 8 dígitos, único en el catálogo
	Name         string          `json:"name"`
	Category     string          `json:"category"` // conjunto fijo, ver category.go
	Cost         decimal.Decimal `json:"cost"`     // costo de compra
	Price        decimal.Decimal `json:"price"`    // precio de venta
	Stock        int             `json:"stock"`    // invariante: >= 0
	ReorderPoint int             `json:"reorderPoint"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Specs        json.RawMessage `json:"specs,omitempty"`      // JSON libre (ficha técnica)
	SupplierID   string          `json:"supplierId,omitempty"` // referencia débil a Supplier
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// DefaultReorderPoint punto de reorden cuando el alta no lo especifica.
const DefaultReorderPoint = 5
