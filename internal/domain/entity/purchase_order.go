package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatusDraft único estado contemplado: las órdenes son
// propuestas consultivas, sin flujo de aprobación ni persistencia.
const PurchaseOrderStatusDraft = "draft"

// PurchaseOrderDraft es un value object efímero generado por el motor de
// reposición. Nunca se persiste: regenerar la detección no puede duplicar
// borradores guardados.
type PurchaseOrderDraft struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	Qty          int             `json:"qty"`
	UnitCost     decimal.Decimal `json:"unitCost"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	SupplierName string          `json:"supplier"`
	Status       string          `json:"status"` // siempre "draft"
	CreatedAt    time.Time       `json:"createdAt"`
}
