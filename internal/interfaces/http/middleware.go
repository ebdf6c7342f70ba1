package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		evt := log.Info()
		if err != nil {
			evt = log.Warn().Err(err)
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
