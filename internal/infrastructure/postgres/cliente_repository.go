package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// FindAll cuenta el total y devuelve la página pedida. La columna proviene de la whitelist
// de PageQuery, nunca del usuario directamente.
func (r *ClienteRepo) FindAll(ctx context.Context, q repository.PageQuery) (*repository.Page[*entity.Cliente], error) {
	col, err := q.SortColumn()
	if err != nil {
		return nil, err
	}
	dir := "ASC"
	if q.Descending() {
		dir = "DESC"
	}

	var total int64
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM clientes`).Scan(&total); err != nil {
		return nil, fmt.Errorf("count clientes: %w", err)
	}

	query := fmt.Sprintf(`SELECT id, text FROM clientes ORDER BY %s %s, id %s LIMIT $1 OFFSET $2`, col, dir, dir)
	rows, err := r.q.Query(ctx, query, q.Size, q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	page := &repository.Page[*entity.Cliente]{
		Items:  []*entity.Cliente{},
		Total:  total,
		Number: q.Number,
		Size:   q.Size,
	}
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Text); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		page.Items = append(page.Items, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return page, nil
}

// GetByID obtiene un cliente por ID; (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(ctx, `SELECT id, text FROM clientes WHERE id = $1`, id).Scan(&c.ID, &c.Text)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// Create inserta el cliente y asigna el id generado.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	err := r.q.QueryRow(ctx, `INSERT INTO clientes (text) VALUES ($1) RETURNING id`, cliente.Text).Scan(&cliente.ID)
	if err != nil {
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// Update reemplaza el texto del cliente.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	cmd, err := r.q.Exec(ctx, `UPDATE clientes SET text = $2 WHERE id = $1`, cliente.ID, cliente.Text)
	if err != nil {
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
