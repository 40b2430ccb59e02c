package repository

import "github.com/greenforce/gf-crm/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Sin Delete: qué hacer con productos que referencian a un proveedor borrado
// sigue siendo una decisión de producto pendiente, así que el borrado no existe.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List() ([]*entity.Supplier, error)
}
