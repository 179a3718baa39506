package dto

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// ClienteRequest entrada para crear o reemplazar un cliente. El id del cuerpo se ignora.
type ClienteRequest struct {
	ID   *int64 `json:"id,omitempty"`
	Text string `json:"text" validate:"required" message:"Text cannot be empty"`
}

// ClienteResponse salida de un cliente.
type ClienteResponse struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// ToClienteResponse mapea la entidad a su representación HTTP.
func ToClienteResponse(c *entity.Cliente) ClienteResponse {
	return ClienteResponse{ID: c.ID, Text: c.Text}
}

// ClientePage página de clientes.
type ClientePage = PagedResult[ClienteResponse]
