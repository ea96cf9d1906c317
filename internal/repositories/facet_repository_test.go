package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"numerica-backend/internal/query"
)

func newFacetRepo(t *testing.T) (FacetRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	return FacetRepository{DB: db, QueryTimeout: time.Second}, mock, func() { _ = db.Close() }
}

func facetRows(pairs ...any) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"value", "count"})
	for i := 0; i < len(pairs); i += 2 {
		rows.AddRow(pairs[i], pairs[i+1])
	}
	return rows
}

func TestFacets_ExcludesOwnDimension(t *testing.T) {
	repo, mock, closeDB := newFacetRepo(t)
	defer closeDB()

	// Active filter: sucursal. Its own facet query must NOT bind the
	// sucursal predicate; every other dimension must.
	mock.ExpectQuery(`GROUP BY "Compañía"`).
		WillReturnRows(facetRows("GSAU Norte", 40, "GSAU Sur", 22))
	mock.ExpectQuery(`GROUP BY "Puesto"`).
		WithArgs("GSAU Norte").
		WillReturnRows(facetRows("GERENTE DE VENTAS", 3, "ASESOR COMERCIAL", 12))
	mock.ExpectQuery(`GROUP BY "Status"`).
		WithArgs("GSAU Norte").
		WillReturnRows(facetRows("A", 30, "B", 10))
	mock.ExpectQuery(`GROUP BY TO_CHAR`).
		WithArgs("GSAU Norte").
		WillReturnRows(facetRows("2024-10-15", 40))
	// category facet groups positions, then classifies client-side
	mock.ExpectQuery(`GROUP BY "Puesto"`).
		WithArgs("GSAU Norte").
		WillReturnRows(facetRows("GERENTE DE VENTAS", 3, "JEFE DE TALLER", 2, "ASESOR COMERCIAL", 12))

	set, err := repo.Facets(context.Background(), query.FilterCriteria{Sucursal: "GSAU Norte"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set.Sucursales) != 2 {
		t.Fatalf("sucursales = %d, want 2", len(set.Sucursales))
	}
	if set.Estados[0].Value != "Activo" || set.Estados[1].Value != "Baja" {
		t.Fatalf("status codes should expand to labels: %+v", set.Estados)
	}
	// 3 + 2 managers fold into one Gerencia bucket; labels come sorted
	want := map[string]int{"Gerencia": 5, "Ventas": 12}
	for _, fv := range set.Categorias {
		if want[fv.Value] != fv.Count {
			t.Fatalf("category %q count = %d, want %d", fv.Value, fv.Count, want[fv.Value])
		}
		delete(want, fv.Value)
	}
	if len(want) != 0 {
		t.Fatalf("missing categories: %v", want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListPeriods(t *testing.T) {
	repo, mock, closeDB := newFacetRepo(t)
	defer closeDB()

	mock.ExpectQuery(`GROUP BY TO_CHAR`).
		WillReturnRows(facetRows("2024-10-31", 120, "2024-10-15", 118))

	periods, err := repo.ListPeriods(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(periods) != 2 || periods[0].Value != "2024-10-31" {
		t.Fatalf("periods = %+v", periods)
	}
}

func TestUniqueCount_IgnoresCategoryFilter(t *testing.T) {
	repo, mock, closeDB := newFacetRepo(t)
	defer closeDB()

	// Status binds one arg; category must not reach the query at all.
	mock.ExpectQuery(`COUNT\(DISTINCT "CURP"\)`).
		WithArgs("A").
		WillReturnRows(sqlmock.NewRows([]string{"total", "male", "female"}).AddRow(230, 140, 90))

	uc, err := repo.UniqueCount(context.Background(), query.FilterCriteria{
		Status:    "Activo",
		Categoria: "Gerencia",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.UniqueCurps != 230 || uc.UniqueMales != 140 || uc.UniqueFemales != 90 {
		t.Fatalf("counts wrong: %+v", uc)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
