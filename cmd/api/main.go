package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/jsonfile"
	httpRouter "github.com/tu-usuario/inventario-lite/internal/interfaces/http"
	"github.com/tu-usuario/inventario-lite/pkg/config"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.File).
		Msg("iniciando aplicación")

	// El inventario se construye aquí y se pasa explícitamente: no hay
	// estado global.
	inv := inventory.New()
	store := jsonfile.New(cfg.Store.File)
	catalogUC := usecase.NewCatalogUseCase(inv, store)

	if cfg.Store.Autoload {
		switch err := catalogUC.Load(); {
		case err == nil:
			log.Info().Str("file", cfg.Store.File).Msg("catálogo cargado al arrancar")
		case errors.Is(err, fs.ErrNotExist):
			log.Info().Str("file", cfg.Store.File).Msg("sin catálogo previo, se inicia vacío")
		default:
			log.Warn().Err(err).Msg("no se pudo cargar el catálogo persistido")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC: catalogUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
