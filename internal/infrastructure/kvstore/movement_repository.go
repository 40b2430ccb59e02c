package kvstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
)

// MovementRepository persiste el libro de movimientos como JSON bajo la clave
// "stockMovements", en orden lógico (ID ascendente). El libro solo crece.
type MovementRepository struct {
	kv KV
}

// NewMovementRepository construye el repositorio sobre el KV indicado.
func NewMovementRepository(kv KV) *MovementRepository {
	return &MovementRepository{kv: kv}
}

func (r *MovementRepository) load() ([]*entity.StockMovement, error) {
	raw, err := r.kv.Get(KeyMovements, []byte("[]"))
	if err != nil {
		return nil, err
	}
	var list []*entity.StockMovement
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: decodificar %q: %v", domain.ErrPersistence, KeyMovements, err)
	}
	return list, nil
}

func (r *MovementRepository) save(list []*entity.StockMovement) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: codificar %q: %v", domain.ErrPersistence, KeyMovements, err)
	}
	return r.kv.Set(KeyMovements, raw)
}

// Append asigna un ID estrictamente creciente (unix-nano, con corrección si
// dos altas caen en el mismo nanosegundo) y persiste el movimiento.
func (r *MovementRepository) Append(movement *entity.StockMovement) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	id := time.Now().UnixNano()
	if n := len(list); n > 0 && id <= list[n-1].ID {
		id = list[n-1].ID + 1
	}
	movement.ID = id
	return r.save(append(list, movement))
}

// ListByProduct devuelve hasta limit movimientos del producto, del más
// reciente al más antiguo.
func (r *MovementRepository) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.StockMovement, 0, limit)
	for i := len(list) - 1; i >= 0; i-- {
		if list[i].ProductID != productID {
			continue
		}
		out = append(out, list[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListAll devuelve el libro completo en orden lógico.
func (r *MovementRepository) ListAll() ([]*entity.StockMovement, error) {
	return r.load()
}
