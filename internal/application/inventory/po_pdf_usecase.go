package inventory

import "context"

// PurchaseOrderPDFUseCase genera la representación PDF de un borrador de
// orden de compra. El borrador se construye al vuelo y se descarta: solo los
// bytes del documento salen de aquí.
type PurchaseOrderPDFUseCase struct {
	replenishment *ReplenishmentUseCase
	generator     PurchaseOrderPDFGenerator
}

// NewPurchaseOrderPDFUseCase construye el caso de uso.
func NewPurchaseOrderPDFUseCase(
	replenishment *ReplenishmentUseCase,
	generator PurchaseOrderPDFGenerator,
) *PurchaseOrderPDFUseCase {
	return &PurchaseOrderPDFUseCase{replenishment: replenishment, generator: generator}
}

// Generate devuelve los bytes del PDF del borrador para el producto.
func (uc *PurchaseOrderPDFUseCase) Generate(ctx context.Context, productID string) ([]byte, error) {
	draft, product, supplier, err := uc.replenishment.draft(productID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GeneratePurchaseOrderPDF(ctx, draft, product, supplier)
}
