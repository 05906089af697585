package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lrava2023/ControlNyxForge/internal/domain/entity"
	"github.com/lrava2023/ControlNyxForge/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla stock_movements es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock. CreatedAt lo asigna el servidor de BD.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`
	reason := (*string)(nil)
	if movement.Reason != "" {
		reason = &movement.Reason
	}
	err := r.q.QueryRow(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity, reason,
	).Scan(&movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista los movimientos de un producto, el más reciente primero,
// con nombre y SKU del producto al momento de la lectura.
func (r *StockMovementRepo) ListByProduct(productID string) ([]*entity.MovementWithProduct, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.reason, m.created_at, p.name, p.sku
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.product_id = $1
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list movements by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementWithProduct
	for rows.Next() {
		var m entity.MovementWithProduct
		var reason *string
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &reason,
			&m.CreatedAt, &m.ProductName, &m.ProductSKU); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if reason != nil {
			m.Reason = *reason
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
