package http

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/jhoicas/clientes-api/pkg/validation"
)

// MIMEProblemJSON media type de los cuerpos de error (RFC 7807).
const MIMEProblemJSON = "application/problem+json"

const (
	problemTypeBlank        = "about:blank"
	titleConstraint         = "Constraint Violation"
	detailInvalidContent    = "Invalid request content."
	detailUnreadableBody    = "Failed to read request"
	detailInvalidID         = "Failed to convert 'id'"
	messageUnknownSortField = "Unknown sort field"
)

// writeProblem responde con un ProblemDetail y Content-Type application/problem+json.
func writeProblem(c *fiber.Ctx, status int, title, detail string, violations []dto.Violation) error {
	return c.Status(status).JSON(dto.ProblemDetail{
		Type:       problemTypeBlank,
		Title:      title,
		Status:     status,
		Detail:     detail,
		Instance:   c.Path(),
		Violations: violations,
	}, MIMEProblemJSON)
}

func badRequest(c *fiber.Ctx, detail string) error {
	return writeProblem(c, fiber.StatusBadRequest, http.StatusText(fiber.StatusBadRequest), detail, nil)
}

// constraintViolation 400 con la lista de campos inválidos.
func constraintViolation(c *fiber.Ctx, violations []dto.Violation) error {
	return writeProblem(c, fiber.StatusBadRequest, titleConstraint, detailInvalidContent, violations)
}

func violationsFrom(verrs validation.Errors) []dto.Violation {
	out := make([]dto.Violation, 0, len(verrs))
	for _, v := range verrs {
		out = append(out, dto.Violation{Field: v.Field, Message: v.Message})
	}
	return out
}

// ErrorHandler convierte errores no manejados por los handlers en problem details.
// Los *fiber.Error conservan su código; el resto se registra y responde 500.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		detail := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
			detail = fe.Message
		} else {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
		}
		return writeProblem(c, status, http.StatusText(status), detail, nil)
	}
}
