package repository

import "github.com/greenforce/gf-crm/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos (DIP). Solo admite append y lecturas: los movimientos jamás
// se editan, borran ni compactan.
type MovementRepository interface {
	// Append persiste el movimiento asignándole un ID estrictamente creciente.
	Append(movement *entity.StockMovement) error

	// ListByProduct devuelve hasta limit movimientos del producto, del más
	// reciente al más antiguo. limit <= 0 devuelve todos.
	ListByProduct(productID string, limit int) ([]*entity.StockMovement, error)

	// ListAll devuelve el libro completo en orden lógico (ID ascendente).
	ListAll() ([]*entity.StockMovement, error)
}
