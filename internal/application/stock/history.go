package stock

import (
	"context"

	"github.com/lrava2023/ControlNyxForge/internal/domain"
	"github.com/lrava2023/ControlNyxForge/internal/domain/entity"
	"github.com/lrava2023/ControlNyxForge/internal/domain/repository"
)

// HistoryUseCase consulta el historial de movimientos de un producto.
// Es una lectura fuera de transacción: los movimientos confirmados son
// inmutables, así que puede servirse desde una réplica si existe.
type HistoryUseCase struct {
	movRepo     repository.StockMovementRepository
	productRepo repository.ProductRepository
}

// NewHistoryUseCase construye el caso de uso con repos atados al pool.
func NewHistoryUseCase(movRepo repository.StockMovementRepository, productRepo repository.ProductRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo, productRepo: productRepo}
}

// GetHistory devuelve los movimientos de un producto, el más reciente primero,
// cada uno con el nombre y SKU actuales del producto (snapshot de lectura).
func (uc *HistoryUseCase) GetHistory(ctx context.Context, productID string) ([]*entity.MovementWithProduct, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return uc.movRepo.ListByProduct(productID)
}
