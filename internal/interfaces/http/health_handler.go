package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/docs"
)

// Pinger verifica la disponibilidad del almacenamiento (pgxpool.Pool lo implementa).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health GET /health. Sin Pinger (almacenamiento en memoria) siempre responde ok.
func Health(service string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "service": service})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}

// OpenAPI GET /openapi.json devuelve el documento registrado en swag.
func OpenAPI(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(docs.SwaggerInfo.ReadDoc())
}
