package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada: suma al stock
	MovementTypeOUT = "OUT" // salida: resta del stock
)

// StockMovement es el registro de auditoría inmutable de un cambio de stock.
// Se crea exactamente una vez, en la misma transacción que actualiza la
// cantidad del producto; nunca se actualiza ni se borra.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // IN | OUT
	Quantity  int64  // invariante: > 0
	Reason    string // razón libre, opcional
	CreatedAt time.Time
}

// MovementWithProduct movimiento decorado con un snapshot del producto
// (nombre y SKU al momento de la lectura, no al de la creación).
type MovementWithProduct struct {
	StockMovement
	ProductName string
	ProductSKU  string
}
