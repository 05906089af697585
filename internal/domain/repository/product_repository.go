package repository

import "github.com/lrava2023/ControlNyxForge/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID y GetBySKU devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción: es el punto de serialización de
	// los movimientos concurrentes sobre un mismo producto.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AdjustQuantity aplica un delta relativo (positivo o negativo) sobre la
	// cantidad y devuelve el producto ya actualizado.
	AdjustQuantity(id string, delta int64) (*entity.Product, error)
	ListActive() ([]*entity.Product, error)
	// Deactivate eliminación lógica (is_active = false).
	Deactivate(id string) error
}
