package inventory

import (
	"context"

	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción del almacén, pasando
// repositorios atados a esa transacción. Garantiza que el cambio de stock y el
// movimiento del libro se confirmen como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}

// PurchaseOrderPDFGenerator puerto para renderizar un borrador de orden de
// compra como documento PDF. supplier puede ser nil si el directorio está vacío.
type PurchaseOrderPDFGenerator interface {
	GeneratePurchaseOrderPDF(
		ctx context.Context,
		draft *entity.PurchaseOrderDraft,
		product *entity.Product,
		supplier *entity.Supplier,
	) ([]byte, error)
}
