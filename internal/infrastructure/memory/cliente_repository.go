package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo almacenamiento en memoria de clientes (desarrollo y tests).
type ClienteRepo struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]entity.Cliente
}

// NewClienteRepository construye un repositorio vacío. Los ids empiezan en 1.
func NewClienteRepository() *ClienteRepo {
	return &ClienteRepo{rows: make(map[int64]entity.Cliente)}
}

// FindAll ordena por la columna pedida (desempate por id) y corta la página.
func (r *ClienteRepo) FindAll(ctx context.Context, q repository.PageQuery) (*repository.Page[*entity.Cliente], error) {
	col, err := q.SortColumn()
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	all := make([]entity.Cliente, 0, len(r.rows))
	for _, c := range r.rows {
		all = append(all, c)
	}
	r.mu.RUnlock()

	desc := q.Descending()
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if col == "text" {
			if cmp := strings.Compare(a.Text, b.Text); cmp != 0 {
				return (cmp < 0) != desc
			}
		}
		return (a.ID < b.ID) != desc
	})

	page := &repository.Page[*entity.Cliente]{
		Items:  []*entity.Cliente{},
		Total:  int64(len(all)),
		Number: q.Number,
		Size:   q.Size,
	}
	start := q.Offset()
	if start < 0 || start >= len(all) {
		return page, nil
	}
	end := start + min(q.Size, len(all)-start)
	for i := start; i < end; i++ {
		c := all[i]
		page.Items = append(page.Items, &c)
	}
	return page, nil
}

// GetByID devuelve una copia del cliente o (nil, nil).
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Create asigna el siguiente id y guarda el cliente.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cliente.ID = r.nextID
	r.rows[cliente.ID] = *cliente
	return nil
}

// Update reemplaza el cliente existente.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[cliente.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[cliente.ID] = *cliente
	return nil
}

// Delete elimina el cliente id.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}
