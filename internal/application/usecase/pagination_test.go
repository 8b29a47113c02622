package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/reservas-api/internal/application/usecase"
)

func TestPaginate_Normalizacion(t *testing.T) {
	cases := []struct {
		name       string
		totalCount int
		page       int
		pageSize   int
		want       usecase.Page
	}{
		{
			name: "valores dentro de rango quedan intactos",
			totalCount: 25, page: 2, pageSize: 10,
			want: usecase.Page{Page: 2, PageSize: 10, Skip: 10, TotalPages: 3},
		},
		{
			name: "page menor a 1 se normaliza a 1",
			totalCount: 25, page: 0, pageSize: 10,
			want: usecase.Page{Page: 1, PageSize: 10, Skip: 0, TotalPages: 3},
		},
		{
			name: "page negativa se normaliza a 1",
			totalCount: 25, page: -3, pageSize: 10,
			want: usecase.Page{Page: 1, PageSize: 10, Skip: 0, TotalPages: 3},
		},
		{
			name: "pageSize menor a 1 toma el default 10",
			totalCount: 25, page: 1, pageSize: 0,
			want: usecase.Page{Page: 1, PageSize: 10, Skip: 0, TotalPages: 3},
		},
		{
			name: "pageSize mayor a 50 se recorta a 50",
			totalCount: 120, page: 1, pageSize: 200,
			want: usecase.Page{Page: 1, PageSize: 50, Skip: 0, TotalPages: 3},
		},
		{
			name: "sin filas el total de páginas es 0",
			totalCount: 0, page: 1, pageSize: 10,
			want: usecase.Page{Page: 1, PageSize: 10, Skip: 0, TotalPages: 0},
		},
		{
			name: "página más allá del total produce skip fuera de rango",
			totalCount: 25, page: 4, pageSize: 10,
			want: usecase.Page{Page: 4, PageSize: 10, Skip: 30, TotalPages: 3},
		},
		{
			name: "total exactamente divisible no agrega página extra",
			totalCount: 30, page: 1, pageSize: 10,
			want: usecase.Page{Page: 1, PageSize: 10, Skip: 0, TotalPages: 3},
		},
		{
			name: "una fila produce una página",
			totalCount: 1, page: 1, pageSize: 50,
			want: usecase.Page{Page: 1, PageSize: 50, Skip: 0, TotalPages: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := usecase.Paginate(tc.totalCount, tc.page, tc.pageSize)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Propiedad: para parámetros ya válidos, skip = (page-1)*pageSize
// y totalPages = ceil(totalCount/pageSize).
func TestPaginate_PropiedadSkipYTotalPages(t *testing.T) {
	for page := 1; page <= 5; page++ {
		for _, pageSize := range []int{1, 7, 10, 50} {
			for _, total := range []int{0, 1, 9, 10, 11, 49, 50, 51, 100} {
				got := usecase.Paginate(total, page, pageSize)

				assert.Equal(t, (page-1)*pageSize, got.Skip)
				wantPages := (total + pageSize - 1) / pageSize
				assert.Equal(t, wantPages, got.TotalPages,
					"total=%d pageSize=%d", total, pageSize)
			}
		}
	}
}
