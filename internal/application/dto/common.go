package dto

import "github.com/jhoicas/clientes-api/internal/domain/repository"

// Valores por defecto de los parámetros de listado.
const (
	DefaultPageNumber    = 0
	DefaultPageSize      = 10
	DefaultSortBy        = "id"
	DefaultSortDirection = "asc"
)

// PagedResult envoltorio de una página. PageNumber es 1-based aunque la consulta sea 0-based.
type PagedResult[T any] struct {
	Data          []T   `json:"data"`
	TotalElements int64 `json:"totalElements"`
	PageNumber    int   `json:"pageNumber"`
	TotalPages    int   `json:"totalPages"`
	IsFirst       bool  `json:"isFirst"`
	IsLast        bool  `json:"isLast"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

// NewPagedResult proyecta una página del repositorio aplicando mapFn a cada elemento.
func NewPagedResult[E, T any](page *repository.Page[E], mapFn func(E) T) *PagedResult[T] {
	data := make([]T, 0, len(page.Items))
	for _, it := range page.Items {
		data = append(data, mapFn(it))
	}
	return &PagedResult[T]{
		Data:          data,
		TotalElements: page.Total,
		PageNumber:    page.Number + 1,
		TotalPages:    page.TotalPages(),
		IsFirst:       page.IsFirst(),
		IsLast:        page.IsLast(),
		HasNext:       page.HasNext(),
		HasPrevious:   page.HasPrevious(),
	}
}

// Violation error de validación sobre un campo.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProblemDetail cuerpo de error RFC 7807 (application/problem+json).
type ProblemDetail struct {
	Type       string      `json:"type"`
	Title      string      `json:"title"`
	Status     int         `json:"status"`
	Detail     string      `json:"detail"`
	Instance   string      `json:"instance"`
	Violations []Violation `json:"violations,omitempty"`
}
