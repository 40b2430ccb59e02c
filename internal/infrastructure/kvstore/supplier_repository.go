package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
)

// SupplierRepository persiste el directorio de proveedores como JSON bajo la
// clave "suppliers".
type SupplierRepository struct {
	kv KV
}

// NewSupplierRepository construye el repositorio sobre el KV indicado.
func NewSupplierRepository(kv KV) *SupplierRepository {
	return &SupplierRepository{kv: kv}
}

func (r *SupplierRepository) load() ([]*entity.Supplier, error) {
	raw, err := r.kv.Get(KeySuppliers, []byte("[]"))
	if err != nil {
		return nil, err
	}
	var list []*entity.Supplier
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: decodificar %q: %v", domain.ErrPersistence, KeySuppliers, err)
	}
	return list, nil
}

func (r *SupplierRepository) save(list []*entity.Supplier) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: codificar %q: %v", domain.ErrPersistence, KeySuppliers, err)
	}
	return r.kv.Set(KeySuppliers, raw)
}

// Create añade un proveedor al directorio.
func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	for _, s := range list {
		if s.ID == supplier.ID {
			return domain.ErrDuplicate
		}
	}
	return r.save(append(list, supplier))
}

// GetByID devuelve el proveedor o nil si no existe.
func (r *SupplierRepository) GetByID(id string) (*entity.Supplier, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

// Update reemplaza el proveedor con el mismo ID.
func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	for i, s := range list {
		if s.ID == supplier.ID {
			list[i] = supplier
			return r.save(list)
		}
	}
	return domain.ErrNotFound
}

// List devuelve el directorio completo en orden de alta.
func (r *SupplierRepository) List() ([]*entity.Supplier, error) {
	return r.load()
}
