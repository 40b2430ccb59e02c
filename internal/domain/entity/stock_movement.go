package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement representa una entrada o salida de stock de un producto.
// Los registros son inmutables: el libro solo crece, nunca se edita ni trunca.
// ID es estrictamente creciente (base unix-nano), de modo que el orden lógico
// del libro es por ID ascendente; la presentación invierte ese orden.
type StockMovement struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"` // in, out
	Qty       int       `json:"qty"`  // siempre positivo
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIn || t == MovementTypeOut
}
