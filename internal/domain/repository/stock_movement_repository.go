package repository

import "github.com/lrava2023/ControlNyxForge/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para movimientos.
// La tabla es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// ListByProduct devuelve el historial de un producto, el más reciente
	// primero, con nombre y SKU del producto al momento de la lectura.
	ListByProduct(productID string) ([]*entity.MovementWithProduct, error)
}
