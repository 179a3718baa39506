package repository

import (
	"math"
	"strings"

	"github.com/jhoicas/clientes-api/internal/domain"
)

// Direcciones de ordenamiento aceptadas.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// sortableColumns mapea el nombre público del campo a la columna física (whitelist).
var sortableColumns = map[string]string{
	"id":   "id",
	"text": "text",
}

// PageQuery solicitud de página: Number es 0-based.
type PageQuery struct {
	Number  int
	Size    int
	SortBy  string
	SortDir string
}

// SortColumn devuelve la columna a usar para SortBy o domain.ErrInvalidSort.
func (q PageQuery) SortColumn() (string, error) {
	col, ok := sortableColumns[strings.ToLower(q.SortBy)]
	if !ok {
		return "", domain.ErrInvalidSort
	}
	return col, nil
}

// Descending indica si el orden es descendente. Cualquier valor distinto de "asc" lo es.
func (q PageQuery) Descending() bool {
	return !strings.EqualFold(q.SortDir, SortAsc)
}

// MaxPageNumber mayor número de página (0-based) aceptado.
const MaxPageNumber = math.MaxInt32

// Offset desplazamiento en filas para la página pedida. Satura en math.MaxInt.
func (q PageQuery) Offset() int {
	if q.Number <= 0 || q.Size <= 0 {
		return 0
	}
	if q.Number > math.MaxInt/q.Size {
		return math.MaxInt
	}
	return q.Number * q.Size
}

// Page resultado de una consulta paginada.
type Page[T any] struct {
	Items  []T
	Total  int64
	Number int // 0-based
	Size   int
}

// TotalPages número de páginas; 0 si no hay elementos.
func (p Page[T]) TotalPages() int {
	if p.Total == 0 {
		return 0
	}
	if p.Size <= 0 {
		return 1
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) HasNext() bool     { return p.Number+1 < p.TotalPages() }
func (p Page[T]) HasPrevious() bool { return p.Number > 0 }
func (p Page[T]) IsFirst() bool     { return !p.HasPrevious() }
func (p Page[T]) IsLast() bool      { return !p.HasNext() }
