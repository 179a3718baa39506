package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// PageLimits límites de tamaño de página configurables.
type PageLimits struct {
	DefaultSize int
	MaxSize     int
}

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo   repository.ClienteRepository
	tx     TxRunner
	limits PageLimits
	log    *logger.Logger
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository, tx TxRunner, limits PageLimits, log *logger.Logger) *ClienteUseCase {
	if limits.DefaultSize <= 0 {
		limits.DefaultSize = dto.DefaultPageSize
	}
	if limits.MaxSize < limits.DefaultSize {
		limits.MaxSize = limits.DefaultSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ClienteUseCase{repo: repo, tx: tx, limits: limits, log: log}
}

// List devuelve una página de clientes. pageNo es 0-based.
func (uc *ClienteUseCase) List(ctx context.Context, pageNo, pageSize int, sortBy, sortDir string) (*dto.ClientePage, error) {
	if pageNo < 0 {
		pageNo = 0
	}
	if pageNo > repository.MaxPageNumber {
		pageNo = repository.MaxPageNumber
	}
	if pageSize <= 0 {
		pageSize = uc.limits.DefaultSize
	}
	if pageSize > uc.limits.MaxSize {
		pageSize = uc.limits.MaxSize
	}
	if strings.TrimSpace(sortBy) == "" {
		sortBy = dto.DefaultSortBy
	}
	q := repository.PageQuery{Number: pageNo, Size: pageSize, SortBy: sortBy, SortDir: sortDir}
	if _, err := q.SortColumn(); err != nil {
		return nil, err
	}

	var page *repository.Page[*entity.Cliente]
	err := uc.tx.RunReadOnly(ctx, func(repo repository.ClienteRepository) error {
		var err error
		page, err = repo.FindAll(ctx, q)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("page", pageNo).Int("size", pageSize).Int64("total", page.Total).Msg("listado de clientes")
	return dto.NewPagedResult(page, dto.ToClienteResponse), nil
}

// GetByID obtiene un cliente; (nil, nil) si no existe.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := dto.ToClienteResponse(c)
	return &out, nil
}

// Create persiste un nuevo cliente con id generado. El id del cuerpo se ignora.
func (uc *ClienteUseCase) Create(ctx context.Context, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cliente{Text: in.Text}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("cliente_id", c.ID).Msg("cliente creado")
	out := dto.ToClienteResponse(c)
	return &out, nil
}

// Update reemplaza el texto del cliente id. El id de la ruta prevalece sobre el del cuerpo.
// Devuelve domain.ErrNotFound sin modificar nada si el cliente no existe.
func (uc *ClienteUseCase) Update(ctx context.Context, id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.Text == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cliente{ID: id, Text: in.Text}
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("cliente_id", id).Msg("cliente actualizado")
	out := dto.ToClienteResponse(c)
	return &out, nil
}

// Delete elimina el cliente id y devuelve su valor previo.
// Devuelve domain.ErrNotFound si no existe.
func (uc *ClienteUseCase) Delete(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	var prior *entity.Cliente
	err := uc.tx.Run(ctx, func(repo repository.ClienteRepository) error {
		var err error
		prior, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if prior == nil {
			return domain.ErrNotFound
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("cliente_id", id).Msg("cliente eliminado")
	out := dto.ToClienteResponse(prior)
	return &out, nil
}
