package kvstore

import (
	"context"

	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// TxRunner implementa inventory.TxRunner sobre el Store: construye
// repositorios atados a una misma transacción SQLite y ejecuta fn con ellos.
// Commit si fn retorna nil, Rollback en caso contrario.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner transaccional.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn dentro de una transacción del almacén.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return r.store.RunTx(ctx, func(kv KV) error {
		return fn(NewProductRepository(kv), NewMovementRepository(kv))
	})
}
