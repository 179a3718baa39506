package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/pkg/metrics"
	"github.com/jhoicas/clientes-api/pkg/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC *usecase.ClienteUseCase
	Validator *validation.Validator
	Metrics   *metrics.Metrics // opcional
	DB        Pinger           // opcional
	AppName   string
}

// Router registra las rutas de la API. Las rutas operativas van antes que /:id
// para que no queden ocultas por el parámetro.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.AppName, deps.DB))
	app.Get("/openapi.json", OpenAPI)
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
		app.Use(deps.Metrics.Middleware())
	}

	// Clientes (base path raíz)
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.Validator)
	app.Get("/", clienteHandler.List)
	app.Post("/", clienteHandler.Create)
	app.Get("/:id", clienteHandler.GetByID)
	app.Put("/:id", clienteHandler.Update)
	app.Delete("/:id", clienteHandler.Delete)
}
