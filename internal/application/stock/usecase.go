package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lrava2023/ControlNyxForge/internal/domain"
	"github.com/lrava2023/ControlNyxForge/internal/domain/entity"
	"github.com/lrava2023/ControlNyxForge/internal/domain/repository"
)

// maxAttempts intentos totales de una operación ante domain.ErrTxConflict.
// Los errores de dominio nunca se reintentan.
const maxAttempts = 3

// opTimeout presupuesto de ejecución de un movimiento (incluye reintentos de tx).
const opTimeout = 5 * time.Second

// MovementInput entrada para registrar un movimiento de stock.
type MovementInput struct {
	ProductID string
	Quantity  int64
	Reason    string
}

// MovementResult resultado de un movimiento aplicado: el movimiento creado y
// el producto con la cantidad posterior a la actualización.
type MovementResult struct {
	Movement *entity.StockMovement
	Product  *entity.Product
}

// RegisterMovementUseCase es el motor de movimientos: aplica una entrada (IN)
// o salida (OUT) sobre un producto como unidad atómica, validada y auditable.
// La fila del producto se bloquea con SELECT FOR UPDATE dentro de la
// transacción, de modo que las llamadas concurrentes sobre el mismo producto
// se serializan en la BD (no con locks de proceso: el servicio puede correr
// en varias instancias contra un mismo store) y las de productos distintos
// avanzan en paralelo.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// RegisterIn registra una entrada de stock (IN): suma Quantity al producto.
func (uc *RegisterMovementUseCase) RegisterIn(ctx context.Context, in MovementInput) (*MovementResult, error) {
	return uc.apply(ctx, entity.MovementTypeIN, in)
}

// RegisterOut registra una salida de stock (OUT): resta Quantity al producto.
// Falla con InsufficientStockError si el stock actual no alcanza.
func (uc *RegisterMovementUseCase) RegisterOut(ctx context.Context, in MovementInput) (*MovementResult, error) {
	return uc.apply(ctx, entity.MovementTypeOUT, in)
}

// apply ejecuta la operación completa dentro de una transacción y reintenta
// desde cero, un número acotado de veces, solo ante conflictos de tx.
func (uc *RegisterMovementUseCase) apply(ctx context.Context, movType string, in MovementInput) (*MovementResult, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		var result *MovementResult
		result, err = uc.applyOnce(ctx, movType, in)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, domain.ErrTxConflict) {
			return nil, err
		}
	}
	return nil, err
}

// applyOnce valida y escribe dentro de una única transacción:
// existencia → cantidad positiva → suficiencia (solo OUT) → crear movimiento
// → ajustar cantidad. Cualquier error de validación provoca el Rollback del
// TxRunner y nada se persiste. La lectura usada para el chequeo de
// suficiencia es la de la fila bloqueada dentro de la misma transacción,
// nunca un valor leído antes de iniciarla.
func (uc *RegisterMovementUseCase) applyOnce(ctx context.Context, movType string, in MovementInput) (*MovementResult, error) {
	var result MovementResult
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if in.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}

		delta := in.Quantity
		if movType == entity.MovementTypeOUT {
			if product.Quantity < in.Quantity {
				return &domain.InsufficientStockError{Current: product.Quantity, Requested: in.Quantity}
			}
			delta = -in.Quantity
		}

		movement := &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: in.ProductID,
			Type:      movType,
			Quantity:  in.Quantity,
			Reason:    in.Reason,
		}
		if err := movRepo.Create(movement); err != nil {
			return err
		}
		updated, err := productRepo.AdjustQuantity(in.ProductID, delta)
		if err != nil {
			return err
		}
		result.Movement = movement
		result.Product = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
