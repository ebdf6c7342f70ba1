package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
)

// InventoryHandler maneja las operaciones agregadas del inventario:
// valor total, barrido de vencidos y persistencia del catálogo.
type InventoryHandler struct {
	uc *usecase.CatalogUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.CatalogUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// TotalValue retorna el valor agregado del inventario.
func (h *InventoryHandler) TotalValue(c *fiber.Ctx) error {
	return c.JSON(h.uc.TotalValue())
}

// SweepExpired elimina los Grocery vencidos y retorna sus ids.
func (h *InventoryHandler) SweepExpired(c *fiber.Ctx) error {
	return c.JSON(h.uc.RemoveExpired())
}

// Save persiste el catálogo completo al archivo configurado.
func (h *InventoryHandler) Save(c *fiber.Ctx) error {
	if err := h.uc.Save(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "catálogo guardado", "file": h.uc.StorePath()})
}

// Load reemplaza el catálogo con el contenido del archivo configurado.
// Ante un documento inválido el catálogo actual queda intacto.
func (h *InventoryHandler) Load(c *fiber.Ctx) error {
	if err := h.uc.Load(); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "catálogo cargado", "file": h.uc.StorePath()})
}
