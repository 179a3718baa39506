package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/validation"
)

// ClienteHandler maneja las peticiones HTTP para Cliente.
type ClienteHandler struct {
	uc        *usecase.ClienteUseCase
	validator *validation.Validator
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, v *validation.Validator) *ClienteHandler {
	if v == nil {
		v = validation.New()
	}
	return &ClienteHandler{uc: uc, validator: v}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Param        pageNo    query  int     false  "Página (0-based)"   default(0)
// @Param        pageSize  query  int     false  "Tamaño de página"   default(10)
// @Param        sortBy    query  string  false  "Campo de orden"     default(id)
// @Param        sortDir   query  string  false  "asc o desc"         default(asc)
// @Success      200  {object}  dto.ClientePage
// @Failure      400  {object}  dto.ProblemDetail
// @Router       / [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	pageNo := c.QueryInt("pageNo", dto.DefaultPageNumber)
	pageSize := c.QueryInt("pageSize", dto.DefaultPageSize)
	sortBy := c.Query("sortBy", dto.DefaultSortBy)
	sortDir := c.Query("sortDir", dto.DefaultSortDirection)

	out, err := h.uc.List(c.UserContext(), pageNo, pageSize, sortBy, sortDir)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSort) {
			return constraintViolation(c, []dto.Violation{{Field: "sortBy", Message: messageUnknownSortField}})
		}
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clientes
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      400  {object}  dto.ProblemDetail
// @Failure      404
// @Router       /{id} [get]
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, detailInvalidID)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if out == nil {
		return notFound(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClienteRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ProblemDetail
// @Router       / [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	in, ok, err := h.bind(c)
	if !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del cliente"
// @Param        body  body  dto.ClienteRequest  true  "Datos del cliente"
// @Success      200   {object}  dto.ClienteResponse
// @Failure      400   {object}  dto.ProblemDetail
// @Failure      404
// @Router       /{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, detailInvalidID)
	}
	in, ok, err := h.bind(c)
	if !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ClienteResponse
// @Failure      400  {object}  dto.ProblemDetail
// @Failure      404
// @Router       /{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, detailInvalidID)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c)
		}
		return err
	}
	return c.JSON(out)
}

// bind parsea y valida el cuerpo. Si ok es false la respuesta 400 ya fue escrita y err
// es lo que debe devolver el handler.
func (h *ClienteHandler) bind(c *fiber.Ctx) (dto.ClienteRequest, bool, error) {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return in, false, badRequest(c, detailUnreadableBody)
	}
	if err := h.validator.Struct(in); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			return in, false, constraintViolation(c, violationsFrom(verrs))
		}
		return in, false, err
	}
	return in, true, nil
}

// notFound 404 sin cuerpo. SendStatus escribiría "Not Found".
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Send(nil)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
