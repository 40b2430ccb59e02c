package repository

import "github.com/greenforce/gf-crm/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// No hay Delete: el catálogo es de solo crecimiento durante la vida del sistema.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
}
