package query

import (
	"strings"
	"testing"
)

func TestResolveSort_Default(t *testing.T) {
	spec := ResolveSort("", "")
	if spec.Key != "nombre" || spec.Direction != SortAsc {
		t.Fatalf("default sort wrong: %+v", spec)
	}
}

func TestResolveSort_UnknownKeyFallsBack(t *testing.T) {
	spec := ResolveSort("; DROP TABLE --", "desc")
	if spec.Expr != `"Nombre completo"` {
		t.Fatalf("unknown key must fall back to the default column, got %q", spec.Expr)
	}
	if spec.Direction != SortDesc {
		t.Fatalf("direction should still be honored, got %s", spec.Direction)
	}
}

func TestResolveSort_DirectionNormalization(t *testing.T) {
	if got := ResolveSort("sueldo", "DESC").Direction; got != SortDesc {
		t.Fatalf("DESC should normalize to descending, got %s", got)
	}
	if got := ResolveSort("sueldo", "descending?").Direction; got != SortAsc {
		t.Fatalf("junk direction should default ascending, got %s", got)
	}
}

func TestResolveSort_DerivedColumnNotSortable(t *testing.T) {
	spec := ResolveSort("categoria", "asc")
	if spec.Expr != `"Nombre completo"` {
		t.Fatalf("derived category is filter-only, got expr %q", spec.Expr)
	}
}

func TestOrderBy_StableTieBreak(t *testing.T) {
	clause := ResolveSort("sueldo", "desc").OrderBy()
	if !strings.Contains(clause, `COALESCE(" SUELDO CLIENTE ", 0) DESC`) {
		t.Fatalf("primary key missing: %q", clause)
	}
	if !strings.Contains(clause, `"Nombre completo" ASC, "CURP" ASC, cveper DESC`) {
		t.Fatalf("tie-break chain missing: %q", clause)
	}
}

func TestResolveColumn_AllowList(t *testing.T) {
	if _, ok := ResolveColumn("no-such-key"); ok {
		t.Fatalf("unknown keys must miss")
	}
	col, ok := ResolveColumn("  SUCURSAL ")
	if !ok || col.Expr != `"Compañía"` {
		t.Fatalf("sucursal lookup failed: %+v ok=%v", col, ok)
	}
	cat, ok := ResolveColumn("categoria")
	if !ok || !cat.Derived || cat.Sortable {
		t.Fatalf("categoria should be derived and filter-only: %+v", cat)
	}
}
