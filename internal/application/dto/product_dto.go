package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Stock es puntero para distinguir "0" de "ausente": el alta lo exige.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Category     string          `json:"category" validate:"required"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Stock        *int            `json:"stock" validate:"required,min=0"`
	ReorderPoint *int            `json:"reorder_point"`
	ImageURL     string          `json:"image_url"`
	Specs        json.RawMessage `json:"specs"`
	SupplierID   string          `json:"supplier_id"`
}

// UpdateProductRequest entrada para actualizar un producto. Barcode e ID son
// inmutables y no aparecen aquí; Stock sí es editable como corrección directa
// (a diferencia de los ajustes, no pasa por el libro de movimientos).
type UpdateProductRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category     *string          `json:"category"`
	Cost         *decimal.Decimal `json:"cost"`
	Price        *decimal.Decimal `json:"price"`
	Stock        *int             `json:"stock" validate:"omitempty,min=0"`
	ReorderPoint *int             `json:"reorder_point"`
	ImageURL     *string          `json:"image_url"`
	Specs        json.RawMessage  `json:"specs"`
	SupplierID   *string          `json:"supplier_id"`
}

// ProductQueryRequest filtros del listado de catálogo.
type ProductQueryRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Sort     string `query:"sort"` // name | stock | price
}

// ProductResponse salida de un producto. Margin es "N/A" cuando costo o
// precio son cero.
type ProductResponse struct {
	ID           string          `json:"id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Cost         decimal.Decimal `json:"cost"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ReorderPoint int             `json:"reorder_point"`
	Margin       string          `json:"margin"`
	LowStock     bool            `json:"low_stock"`
	ImageURL     string          `json:"image_url,omitempty"`
	Specs        json.RawMessage `json:"specs,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado filtrado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
