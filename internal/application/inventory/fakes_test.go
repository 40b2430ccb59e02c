package inventory_test

import (
	"context"
	"sync"

	"github.com/greenforce/gf-crm/internal/domain/entity"
	"github.com/greenforce/gf-crm/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{items: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.items[p.ID] = &cp
	}
	return r
}

func (r *memProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type memMovementRepo struct {
	mu   sync.Mutex
	list []*entity.StockMovement
	next int64
}

func newMemMovementRepo() *memMovementRepo {
	return &memMovementRepo{next: 1}
}

func (r *memMovementRepo) Append(movement *entity.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movement
	cp.ID = r.next
	r.next++
	r.list = append(r.list, &cp)
	movement.ID = cp.ID
	return nil
}

func (r *memMovementRepo) ListByProduct(productID string, limit int) ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StockMovement, 0)
	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].ProductID != productID {
			continue
		}
		cp := *r.list[i]
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListAll() ([]*entity.StockMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StockMovement, 0, len(r.list))
	for _, m := range r.list {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

type memSupplierRepo struct {
	mu   sync.Mutex
	list []*entity.Supplier
}

func newMemSupplierRepo(suppliers ...*entity.Supplier) *memSupplierRepo {
	r := &memSupplierRepo{}
	for _, s := range suppliers {
		cp := *s
		r.list = append(r.list, &cp)
	}
	return r
}

func (r *memSupplierRepo) Create(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *supplier
	r.list = append(r.list, &cp)
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.list {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memSupplierRepo) Update(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.list {
		if s.ID == supplier.ID {
			cp := *supplier
			r.list[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *memSupplierRepo) List() ([]*entity.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(r.list))
	for _, s := range r.list {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// memTxRunner pasa los repositorios en memoria tal cual. Si fn devuelve error
// los dobles no revierten nada: los tests que verifican rollback comprueban
// que fn falle ANTES de cualquier escritura (el orden real del caso de uso).
type memTxRunner struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
) error) error {
	return fn(r.productRepo, r.movementRepo)
}
