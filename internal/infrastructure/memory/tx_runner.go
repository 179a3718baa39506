package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las "transacciones" sobre el repositorio en memoria.
// No hay rollback: fn debe validar antes de mutar.
type TxRunner struct {
	mu   sync.RWMutex
	repo *ClienteRepo
}

// NewTxRunner construye el runner sobre repo.
func NewTxRunner(repo *ClienteRepo) *TxRunner {
	return &TxRunner{repo: repo}
}

func (t *TxRunner) Run(ctx context.Context, fn func(repo repository.ClienteRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.repo)
}

func (t *TxRunner) RunReadOnly(ctx context.Context, fn func(repo repository.ClienteRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fn(t.repo)
}
