package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lrava2023/ControlNyxForge/internal/application/dto"
	"github.com/lrava2023/ControlNyxForge/internal/application/stock"
	"github.com/lrava2023/ControlNyxForge/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP de movimientos de stock.
type StockHandler struct {
	movements *stock.RegisterMovementUseCase
	history   *stock.HistoryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(movements *stock.RegisterMovementUseCase, history *stock.HistoryUseCase) *StockHandler {
	return &StockHandler{movements: movements, history: history}
}

// RegisterIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "productId, type=IN, quantity, reason (opcional)"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/in [post]
func (h *StockHandler) RegisterIn(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeIN)
}

// RegisterOut godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "productId, type=OUT, quantity, reason (opcional)"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/stock/out [post]
func (h *StockHandler) RegisterOut(c *fiber.Ctx) error {
	return h.register(c, entity.MovementTypeOUT)
}

// register valida el body y la coherencia type/endpoint antes de invocar el
// motor; la dirección la fija el endpoint, nunca el motor.
func (h *StockHandler) register(c *fiber.Ctx, movType string) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	if in.ProductID == "" {
		return writeError(c, fiber.StatusBadRequest, CodeValidation, "productId es requerido")
	}
	if in.Type != movType {
		msg := "Para registrar entrada, el tipo debe ser IN"
		if movType == entity.MovementTypeOUT {
			msg = "Para registrar salida, el tipo debe ser OUT"
		}
		return writeError(c, fiber.StatusBadRequest, CodeValidation, msg)
	}

	input := stock.MovementInput{ProductID: in.ProductID, Quantity: in.Quantity, Reason: in.Reason}
	var result *stock.MovementResult
	var err error
	if movType == entity.MovementTypeIN {
		result, err = h.movements.RegisterIn(c.Context(), input)
	} else {
		result, err = h.movements.RegisterOut(c.Context(), input)
	}
	if err != nil {
		return writeDomainError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement: dto.MovementResponse{
			ID:        result.Movement.ID,
			Type:      result.Movement.Type,
			Quantity:  result.Movement.Quantity,
			Reason:    result.Movement.Reason,
			CreatedAt: result.Movement.CreatedAt,
		},
		Product: dto.ProductResponse{
			ID:          result.Product.ID,
			Name:        result.Product.Name,
			Description: result.Product.Description,
			SKU:         result.Product.SKU,
			Stock:       result.Product.Quantity,
			IsActive:    result.Product.IsActive,
			CreatedAt:   result.Product.CreatedAt,
			UpdatedAt:   result.Product.UpdatedAt,
		},
	})
}

// GetHistory godoc
// @Summary      Historial de movimientos de un producto
// @Tags         stock
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/stock/products/{id}/movements [get]
func (h *StockHandler) GetHistory(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return writeError(c, fiber.StatusBadRequest, CodeValidation, "id es requerido")
	}
	movements, err := h.history.GetHistory(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:        m.ID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
			Product:   &dto.MovementProduct{Name: m.ProductName, SKU: m.ProductSKU},
		})
	}
	return c.JSON(out)
}
