package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/greenforce/gf-crm/internal/domain"
	"github.com/greenforce/gf-crm/internal/domain/entity"
)

// ProductRepository persiste el catálogo completo como JSON bajo la clave
// "inventory". Cada operación es un read-modify-write síncrono sobre el KV:
// si el Set falla no queda ningún estado intermedio que revertir.
type ProductRepository struct {
	kv KV
}

// NewProductRepository construye el repositorio sobre el KV indicado.
func NewProductRepository(kv KV) *ProductRepository {
	return &ProductRepository{kv: kv}
}

func (r *ProductRepository) load() ([]*entity.Product, error) {
	raw, err := r.kv.Get(KeyInventory, []byte("[]"))
	if err != nil {
		return nil, err
	}
	var list []*entity.Product
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: decodificar %q: %v", domain.ErrPersistence, KeyInventory, err)
	}
	return list, nil
}

func (r *ProductRepository) save(list []*entity.Product) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: codificar %q: %v", domain.ErrPersistence, KeyInventory, err)
	}
	return r.kv.Set(KeyInventory, raw)
}

// Create añade el producto al catálogo. ID y Barcode deben ser únicos.
func (r *ProductRepository) Create(product *entity.Product) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	for _, p := range list {
		if p.ID == product.ID || p.Barcode == product.Barcode {
			return domain.ErrDuplicate
		}
	}
	return r.save(append(list, product))
}

// GetByID devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// GetByBarcode devuelve el producto o nil si no existe.
func (r *ProductRepository) GetByBarcode(barcode string) (*entity.Product, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto con el mismo ID.
func (r *ProductRepository) Update(product *entity.Product) error {
	list, err := r.load()
	if err != nil {
		return err
	}
	for i, p := range list {
		if p.ID == product.ID {
			list[i] = product
			return r.save(list)
		}
	}
	return domain.ErrNotFound
}

// List devuelve el catálogo completo.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	return r.load()
}
