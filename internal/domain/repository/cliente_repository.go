package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
type ClienteRepository interface {
	FindAll(ctx context.Context, q PageQuery) (*Page[*entity.Cliente], error)
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	Create(ctx context.Context, cliente *entity.Cliente) error
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id int64) error
}
