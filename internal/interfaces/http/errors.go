package http

import (
	"errors"
	"io/fs"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
)

// respondError mapea un error de dominio al status y cuerpo HTTP.
// Todos los errores de dominio son condiciones esperadas: se responden y
// la sesión continúa, nunca tumban el proceso.
func respondError(c *fiber.Ctx, err error) error {
	var outOfStock *domain.OutOfStockError
	switch {
	case errors.As(err, &outOfStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "OUT_OF_STOCK", Message: outOfStock.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidData):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_DATA", Message: err.Error()})
	case errors.Is(err, fs.ErrNotExist):
		// E/S distinguible de contenido corrupto: el archivo no existe
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "FILE_NOT_FOUND", Message: "archivo de catálogo no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
