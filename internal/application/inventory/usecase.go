package inventory

import (
	"context"
	"sync"
	"time"

	"github.com/greenforce/gf-crm/internal/application/dto"
	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// StockLedgerUseCase es la única autoridad que puede cambiar el stock de un
// producto en caliente: verifica la existencia, valida la cantidad, aplica el
// delta y registra exactamente un movimiento, todo dentro de una transacción
// del almacén y serializado por producto.
//
// La exclusión por producto cierra la carrera check-then-act entre la lectura
// del stock y el commit cuando dos ajustes del mismo producto llegan en
// paralelo por HTTP.
type StockLedgerUseCase struct {
	txRunner     TxRunner
	movementRepo repository.MovementRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex // por productID; nunca se desalojan
}

// NewStockLedgerUseCase construye el caso de uso.
func NewStockLedgerUseCase(txRunner TxRunner, movementRepo repository.MovementRepository) *StockLedgerUseCase {
	return &StockLedgerUseCase{
		txRunner:     txRunner,
		movementRepo: movementRepo,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (uc *StockLedgerUseCase) lockFor(productID string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[productID]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[productID] = l
	}
	return l
}

// AdjustStock aplica una entrada o salida de stock. Para salidas la cantidad
// no puede exceder el stock actual (ErrInsufficientStock, sin mutación).
// Cambio de stock y movimiento confirman juntos o no confirman.
func (uc *StockLedgerUseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest, actor string) (*dto.MovementResponse, error) {
	if in.ProductID == "" || !entity.IsValidMovementType(in.Type) || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}
	reason := in.Reason
	if reason == "" {
		reason = "Manual " + in.Type
	}
	if actor == "" {
		actor = "Admin"
	}

	lock := uc.lockFor(in.ProductID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	var movement *entity.StockMovement

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error {
		product, err := productRepo.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		switch in.Type {
		case entity.MovementTypeIn:
			product.Stock += in.Qty
		case entity.MovementTypeOut:
			if in.Qty > product.Stock {
				return domain.ErrInsufficientStock
			}
			product.Stock -= in.Qty
		}
		product.UpdatedAt = now
		if err := productRepo.Update(product); err != nil {
			return err
		}
		movement = &entity.StockMovement{
			ProductID: in.ProductID,
			Type:      in.Type,
			Qty:       in.Qty,
			Reason:    reason,
			Timestamp: now,
			Actor:     actor,
		}
		return movementRepo.Append(movement)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// RecordInitialStockInTx registra la entrada inicial de un producto recién
// creado usando el repositorio de la transacción del caller (misma unidad
// atómica que el alta del producto). Con stock inicial cero no hay movimiento:
// las cantidades del libro son siempre positivas.
func (uc *StockLedgerUseCase) RecordInitialStockInTx(
	movementRepo repository.MovementRepository,
	product *entity.Product,
	actor string,
	now time.Time,
) error {
	if product.Stock <= 0 {
		return nil
	}
	return movementRepo.Append(&entity.StockMovement{
		ProductID: product.ID,
		Type:      entity.MovementTypeIn,
		Qty:       product.Stock,
		Reason:    "Initial stock",
		Timestamp: now,
		Actor:     actor,
	})
}

// ListMovements devuelve hasta limit movimientos del producto, del más
// reciente al más antiguo. Lectura pura.
func (uc *StockLedgerUseCase) ListMovements(productID string, limit int) (*dto.MovementListResponse, error) {
	list, err := uc.movementRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Qty:       m.Qty,
		Reason:    m.Reason,
		Timestamp: m.Timestamp,
		Actor:     m.Actor,
	}
}
