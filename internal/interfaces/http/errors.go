package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lrava2023/ControlNyxForge/internal/application/dto"
	"github.com/lrava2023/ControlNyxForge/internal/domain"
)

// Códigos estables de error expuestos por la API.
const (
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeInvalidQuantity   = "INVALID_QUANTITY"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeValidation        = "VALIDATION"
	CodeInvalidBody       = "INVALID_BODY"
	CodeDuplicate         = "DUPLICATE"
	CodeTxConflict        = "TX_CONFLICT"
	CodeInternal          = "INTERNAL"
)

// writeError responde con el cuerpo de error estándar
// {statusCode, error, message, timestamp, path}.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.NewErrorResponse(status, code, message, c.Path()))
}

// writeDomainError mapea un error de dominio (o inesperado) a la respuesta HTTP.
// Los errores de dominio se propagan sin enmascarar; lo no reconocido es 500.
func writeDomainError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return writeError(c, fiber.StatusNotFound, CodeProductNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity):
		return writeError(c, fiber.StatusBadRequest, CodeInvalidQuantity, err.Error())
	case errors.As(err, &insufficient):
		return writeError(c, fiber.StatusConflict, CodeInsufficientStock, insufficient.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, CodeDuplicate, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrTxConflict):
		// Transitorio: el motor ya agotó sus reintentos; el caller decide si reintenta.
		return writeError(c, fiber.StatusServiceUnavailable, CodeTxConflict, err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, CodeInternal, err.Error())
	}
}
