package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Ninguno es reintentable
// por el caller sin cambiar la entrada.
var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrInvalidQuantity = errors.New("la cantidad debe ser mayor a 0")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
)

// ErrTxConflict error transitorio: la BD detectó un conflicto de escritura
// concurrente (serialization failure / deadlock). El motor lo reintenta un
// número acotado de veces antes de propagarlo.
var ErrTxConflict = errors.New("conflicto de transacción, reintentar")

// InsufficientStockError salida rechazada por stock insuficiente.
// Lleva el stock actual y la cantidad solicitada para diagnóstico.
type InsufficientStockError struct {
	Current   int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente. Stock actual: %d, cantidad solicitada: %d", e.Current, e.Requested)
}

// IsInsufficientStock indica si err es (o envuelve) un InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
