package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrDuplicate         = errors.New("id de producto duplicado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidData       = errors.New("datos de producto inválidos")
)

// OutOfStockError indica una venta mayor al stock disponible.
// Envuelve ErrInsufficientStock para seguir soportando errors.Is.
type OutOfStockError struct {
	Available int
	Requested int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

func (e *OutOfStockError) Unwrap() error {
	return ErrInsufficientStock
}
