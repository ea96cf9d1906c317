package query

import (
	"strings"
	"testing"
	"time"
)

func TestBuildFilterSpec_OmitsBlankValues(t *testing.T) {
	spec := BuildFilterSpec(FilterCriteria{Sucursal: "  ", Status: ""})
	if len(spec.Predicates) != 0 {
		t.Fatalf("blank criteria should produce no predicates, got %d", len(spec.Predicates))
	}
	if spec.HasCategory() {
		t.Fatalf("category should not be set")
	}

	where, args := spec.Render(1)
	if where != "" || len(args) != 0 {
		t.Fatalf("empty spec rendered %q with %d args", where, len(args))
	}
}

func TestBuildFilterSpec_SearchSharesOneParameter(t *testing.T) {
	spec := BuildFilterSpec(FilterCriteria{Search: "  Ana   Ruiz "})
	if len(spec.Predicates) != 1 {
		t.Fatalf("expected 1 predicate, got %d", len(spec.Predicates))
	}

	where, args := spec.Render(1)
	if len(args) != 1 {
		t.Fatalf("search must bind a single shared parameter, got %d", len(args))
	}
	if args[0] != "%ana ruiz%" {
		t.Fatalf("search pattern = %q", args[0])
	}
	if strings.Count(where, "$1") != 2 {
		t.Fatalf("both columns should reuse $1, got %q", where)
	}
	if !strings.Contains(where, "ILIKE") {
		t.Fatalf("search should be case-insensitive contains, got %q", where)
	}
}

func TestBuildFilterSpec_StatusLabelMapsToCode(t *testing.T) {
	spec := BuildFilterSpec(FilterCriteria{Status: "Activo"})
	_, args := spec.Render(1)
	if len(args) != 1 || args[0] != "A" {
		t.Fatalf("Activo should bind code A, got %v", args)
	}

	spec = BuildFilterSpec(FilterCriteria{Status: "X"})
	_, args = spec.Render(1)
	if args[0] != "X" {
		t.Fatalf("unknown status labels pass through, got %v", args)
	}
}

func TestBuildFilterSpec_MonthPeriodRendersRange(t *testing.T) {
	spec := BuildFilterSpec(FilterCriteria{Period: "2024-10"})
	where, args := spec.Render(1)

	if !strings.Contains(where, "cveper >= $1") || !strings.Contains(where, "cveper < $2") {
		t.Fatalf("month period should render a half-open range, got %q", where)
	}
	if len(args) != 2 {
		t.Fatalf("range binds two args, got %d", len(args))
	}
	start := args[0].(time.Time)
	end := args[1].(time.Time)
	if start.Month() != time.October || end.Month() != time.November {
		t.Fatalf("range boundaries wrong: %v .. %v", start, end)
	}
}

func TestBuildFilterSpec_CategoryIsNotPushable(t *testing.T) {
	spec := BuildFilterSpec(FilterCriteria{Categoria: "Gerencia"})
	if !spec.HasCategory() || spec.Category != "Gerencia" {
		t.Fatalf("category filter missing: %+v", spec)
	}
	if len(spec.Predicates) != 0 {
		t.Fatalf("category must never become a column predicate")
	}
}

func TestRender_NumbersPlaceholdersSequentially(t *testing.T) {
	spec := BuildFilterSpec(FilterCriteria{
		Search:   "ana",
		Sucursal: "GSAU Norte",
		Status:   "Baja",
		Period:   "2024-10",
	})

	where, args := spec.Render(3)
	// search $3, sucursal $4, status $5, range $6/$7
	for _, ph := range []string{"$3", "$4", "$5", "$6", "$7"} {
		if !strings.Contains(where, ph) {
			t.Fatalf("missing placeholder %s in %q", ph, where)
		}
	}
	if strings.Contains(where, "$8") {
		t.Fatalf("unexpected extra placeholder in %q", where)
	}
	if len(args) != 5 {
		t.Fatalf("expected 5 args, got %d", len(args))
	}
}
