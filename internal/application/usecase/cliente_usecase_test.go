package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mocks
// ──────────────────────────────────────────────────────────────────────────────

type mockRepo struct{ mock.Mock }

func (m *mockRepo) FindAll(ctx context.Context, q repository.PageQuery) (*repository.Page[*entity.Cliente], error) {
	args := m.Called(ctx, q)
	page, _ := args.Get(0).(*repository.Page[*entity.Cliente])
	return page, args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Cliente)
	return c, args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, c *entity.Cliente) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) Update(ctx context.Context, c *entity.Cliente) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// txRunner ejecuta fn directamente contra el mock y cuenta las invocaciones.
type txRunner struct {
	repo             repository.ClienteRepository
	runs, readOnlies int
}

func (t *txRunner) Run(ctx context.Context, fn func(repository.ClienteRepository) error) error {
	t.runs++
	return fn(t.repo)
}

func (t *txRunner) RunReadOnly(ctx context.Context, fn func(repository.ClienteRepository) error) error {
	t.readOnlies++
	return fn(t.repo)
}

func newUseCase(repo *mockRepo) (*usecase.ClienteUseCase, *txRunner) {
	tx := &txRunner{repo: repo}
	return usecase.NewClienteUseCase(repo, tx, usecase.PageLimits{DefaultSize: 10, MaxSize: 50}, nil), tx
}

func junitCliente() *entity.Cliente {
	return &entity.Cliente{ID: 1, Text: "junitTest"}
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_ProyectaPagina(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, tx := newUseCase(repo)

	q := repository.PageQuery{Number: 0, Size: 10, SortBy: "id", SortDir: "asc"}
	repo.On("FindAll", ctx, q).Return(&repository.Page[*entity.Cliente]{
		Items: []*entity.Cliente{junitCliente()}, Total: 1, Number: 0, Size: 10,
	}, nil)

	out, err := uc.List(ctx, 0, 10, "id", "asc")
	require.NoError(t, err)

	assert.Equal(t, []dto.ClienteResponse{{ID: 1, Text: "junitTest"}}, out.Data)
	assert.Equal(t, int64(1), out.TotalElements)
	assert.Equal(t, 1, out.PageNumber)
	assert.Equal(t, 1, out.TotalPages)
	assert.True(t, out.IsFirst)
	assert.True(t, out.IsLast)
	assert.False(t, out.HasNext)
	assert.False(t, out.HasPrevious)
	assert.Equal(t, 1, tx.readOnlies)
	repo.AssertExpectations(t)
}

func TestList_NormalizaParametros(t *testing.T) {
	ctx := context.Background()
	empty := &repository.Page[*entity.Cliente]{Items: []*entity.Cliente{}}

	tests := []struct {
		name             string
		pageNo, pageSize int
		sortBy           string
		want             repository.PageQuery
	}{
		{"página negativa", -3, 5, "id", repository.PageQuery{Number: 0, Size: 5, SortBy: "id", SortDir: "asc"}},
		{"tamaño cero", 1, 0, "id", repository.PageQuery{Number: 1, Size: 10, SortBy: "id", SortDir: "asc"}},
		{"tamaño excesivo", 0, 1000, "text", repository.PageQuery{Number: 0, Size: 50, SortBy: "text", SortDir: "asc"}},
		{"sortBy vacío", 0, 10, " ", repository.PageQuery{Number: 0, Size: 10, SortBy: "id", SortDir: "asc"}},
		{"página enorme", math.MaxInt, 10, "id", repository.PageQuery{Number: repository.MaxPageNumber, Size: 10, SortBy: "id", SortDir: "asc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc, _ := newUseCase(repo)
			repo.On("FindAll", ctx, tt.want).Return(empty, nil).Once()

			_, err := uc.List(ctx, tt.pageNo, tt.pageSize, tt.sortBy, "asc")
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestList_SortByInvalidoNoConsultaRepo(t *testing.T) {
	repo := &mockRepo{}
	uc, tx := newUseCase(repo)

	_, err := uc.List(context.Background(), 0, 10, "nope", "asc")
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
	assert.Zero(t, tx.readOnlies)
	repo.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID / Create
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	repo.On("GetByID", ctx, int64(1)).Return(junitCliente(), nil)
	repo.On("GetByID", ctx, int64(2)).Return(nil, nil)

	got, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &dto.ClienteResponse{ID: 1, Text: "junitTest"}, got)

	got, err = uc.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreate_AsignaIDDelRepositorio(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	repo.On("Create", ctx, &entity.Cliente{Text: "junitTest"}).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Cliente).ID = 1 }).
		Return(nil)

	bodyID := int64(77)
	got, err := uc.Create(ctx, dto.ClienteRequest{ID: &bodyID, Text: "junitTest"})
	require.NoError(t, err)
	assert.Equal(t, &dto.ClienteResponse{ID: 1, Text: "junitTest"}, got)
	repo.AssertExpectations(t)
}

func TestCreate_TextVacio(t *testing.T) {
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	_, err := uc.Create(context.Background(), dto.ClienteRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_FijaIDDeRuta(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, tx := newUseCase(repo)
	repo.On("GetByID", ctx, int64(1)).Return(junitCliente(), nil)
	repo.On("Update", ctx, &entity.Cliente{ID: 1, Text: "nuevo"}).Return(nil)

	other := int64(9)
	got, err := uc.Update(ctx, 1, dto.ClienteRequest{ID: &other, Text: "nuevo"})
	require.NoError(t, err)
	assert.Equal(t, &dto.ClienteResponse{ID: 1, Text: "nuevo"}, got)
	assert.Equal(t, 1, tx.runs)
	repo.AssertExpectations(t)
}

func TestUpdate_InexistenteNoMuta(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	repo.On("GetByID", ctx, int64(5)).Return(nil, nil)

	_, err := uc.Update(ctx, 5, dto.ClienteRequest{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete_DevuelvePrevio(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	repo.On("GetByID", ctx, int64(1)).Return(junitCliente(), nil)
	repo.On("Delete", ctx, int64(1)).Return(nil).Once()

	got, err := uc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &dto.ClienteResponse{ID: 1, Text: "junitTest"}, got)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}

func TestDelete_Inexistente(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	repo.On("GetByID", ctx, int64(1)).Return(nil, nil)

	_, err := uc.Delete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDelete_PropagaErrorDeRepositorio(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc, _ := newUseCase(repo)
	boom := errors.New("conexión perdida")
	repo.On("GetByID", ctx, int64(1)).Return(nil, boom)

	_, err := uc.Delete(ctx, 1)
	assert.ErrorIs(t, err, boom)
}
