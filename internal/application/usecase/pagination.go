package usecase

import "math"

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Page parámetros de paginación ya normalizados para el listado de reservas.
type Page struct {
	Page       int
	PageSize   int
	Skip       int
	TotalPages int
}

// Paginate normaliza página y tamaño, y calcula el salto y el total de páginas.
// page < 1 se lleva a 1; pageSize < 1 al default (10) y > 50 al máximo (50).
// TotalPages usa división flotante antes de redondear hacia arriba; 0 si no hay filas.
func Paginate(totalCount, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return Page{
		Page:       page,
		PageSize:   pageSize,
		Skip:       (page - 1) * pageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}
}
