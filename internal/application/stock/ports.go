package stock

import (
	"context"

	"github.com/lrava2023/ControlNyxForge/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit al retornar nil, Rollback ante
// cualquier error. Es la garantía de atomicidad del motor de movimientos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
