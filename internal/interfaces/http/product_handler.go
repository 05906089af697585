package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lrava2023/ControlNyxForge/internal/application/dto"
	"github.com/lrava2023/ControlNyxForge/internal/application/product"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc *product.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *product.UseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto (stock = balance de apertura)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	if in.Name == "" || in.SKU == "" {
		return writeError(c, fiber.StatusBadRequest, CodeValidation, "name y sku son requeridos")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return writeError(c, fiber.StatusNotFound, CodeProductNotFound, "Producto con ID "+id+" no encontrado")
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Obtener el stock actual de un producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id}/stock [get]
func (h *ProductHandler) GetStock(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetStock(id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListWithStock godoc
// @Summary      Listar productos con su stock actual
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductStockResponse
// @Router       /api/v1/products/with-stock [get]
func (h *ProductHandler) ListWithStock(c *fiber.Ctx) error {
	products, err := h.uc.ListActive()
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.ProductStockResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.ProductStockResponse{
			ProductID:    p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			CurrentStock: p.Stock,
			IsActive:     p.IsActive,
		})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar (sin stock)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return writeError(c, fiber.StatusNotFound, CodeProductNotFound, "Producto con ID "+id+" no encontrado")
	}
	return c.JSON(out)
}

// SoftDelete godoc
// @Summary      Eliminar lógicamente un producto
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) SoftDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.SoftDelete(id); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "producto desactivado"})
}
