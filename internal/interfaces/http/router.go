package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lrava2023/ControlNyxForge/internal/application/product"
	"github.com/lrava2023/ControlNyxForge/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *product.UseCase
	Movements *stock.RegisterMovementUseCase
	History   *stock.HistoryUseCase
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// Registrar antes de /:id para que "with-stock" no se capture como id.
	products.Get("/with-stock", productHandler.ListWithStock)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/stock", productHandler.GetStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.SoftDelete)

	// Stock movements
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Movements, deps.History)
	stockGroup.Post("/in", stockHandler.RegisterIn)
	stockGroup.Post("/out", stockHandler.RegisterOut)
	stockGroup.Get("/products/:id/movements", stockHandler.GetHistory)
}
