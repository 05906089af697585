package entity

import "time"

// Product representa un producto del inventario. Quantity es el stock
// disponible y solo se modifica a través del motor de movimientos, nunca
// directamente. IsActive implementa la eliminación lógica: los productos
// desactivados salen de los listados pero siguen referenciables por su
// historial de movimientos.
type Product struct {
	ID          string
	SKU         string // código único del producto
	Name        string
	Description string
	Quantity    int64 // invariante: siempre >= 0
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
