package entity

import "time"

// Supplier representa un proveedor de equipos. Ciclo de vida independiente:
// los productos lo referencian pero no lo poseen; no existe borrado en el sistema.
type Supplier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"` // email de contacto
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
