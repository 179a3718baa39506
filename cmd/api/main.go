package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/internal/infrastructure/memory"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/clientes-api/internal/interfaces/http"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/jhoicas/clientes-api/pkg/metrics"
	"github.com/jhoicas/clientes-api/pkg/validation"
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
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		clienteRepo repository.ClienteRepository
		txRunner    usecase.TxRunner
		db          httpRouter.Pinger
	)
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		memRepo := memory.NewClienteRepository()
		clienteRepo = memRepo
		txRunner = memory.NewTxRunner(memRepo)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		if cfg.DB.Migrate {
			applied, err := postgres.Migrate(ctx, pool)
			if err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Strs("aplicadas", applied).Msg("migraciones al día")
		}
		clienteRepo = postgres.NewClienteRepository(pool)
		txRunner = postgres.NewTxRunner(pool)
		db = pool
	}

	clienteUC := usecase.NewClienteUseCase(clienteRepo, txRunner, usecase.PageLimits{
		DefaultSize: cfg.Page.DefaultSize,
		MaxSize:     cfg.Page.MaxSize,
	}, log)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:         cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}, log)

	// Swagger UI: http://localhost:<port>/docs
	if cfg.Swagger.Enabled {
		if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.Swagger.FilePath,
				Path:     "docs",
				Title:    "Clientes API",
			}))
		} else {
			log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger.json no encontrado, UI deshabilitada")
		}
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC: clienteUC,
		Validator: validation.New(),
		Metrics:   metrics.New("clientes"),
		DB:        db,
		AppName:   cfg.App.Name,
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
