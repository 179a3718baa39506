package usecase

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio atado a una transacción.
// Run confirma si fn devuelve nil; RunReadOnly usa una instantánea de solo lectura.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
	RunReadOnly(ctx context.Context, fn func(repo repository.ClienteRepository) error) error
}
