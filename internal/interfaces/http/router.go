package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/price", productHandler.UpdatePrice)
	products.Post("/:id/sell", productHandler.Sell)
	products.Post("/:id/restock", productHandler.Restock)

	// Inventory (agregados y persistencia)
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.CatalogUC)
	invGroup.Get("/value", inventoryHandler.TotalValue)
	invGroup.Post("/expired/sweep", inventoryHandler.SweepExpired)
	invGroup.Post("/save", inventoryHandler.Save)
	invGroup.Post("/load", inventoryHandler.Load)
}
