package query

import "strings"

// SortDirection is a validated sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// SortSpec is a resolved, safe ORDER BY specification. Expr always comes
// from the column allow-list.
type SortSpec struct {
	Key       string
	Expr      string
	Direction SortDirection
}

// defaultSort orders by full name ascending; applied whenever the requested
// key is unknown, derived, or absent.
var defaultSort = SortSpec{Key: "nombre", Expr: colNombre, Direction: SortAsc}

// ResolveSort validates a requested sort key/direction against the
// allow-list. Misses fall back to the default instead of erroring. Any
// direction other than a case-insensitive "desc" means ascending.
func ResolveSort(sortBy, sortDir string) SortSpec {
	spec := defaultSort
	if col, ok := ResolveColumn(sortBy); ok && col.Sortable {
		spec.Key = strings.ToLower(strings.TrimSpace(sortBy))
		spec.Expr = col.Expr
	}
	if strings.EqualFold(strings.TrimSpace(sortDir), "desc") {
		spec.Direction = SortDesc
	} else {
		spec.Direction = SortAsc
	}
	return spec
}

// OrderBy renders the ORDER BY clause. The fixed tie-break chain keeps
// ordering deterministic for equal keys, which pagination depends on.
func (s SortSpec) OrderBy() string {
	return " ORDER BY " + s.Expr + " " + string(s.Direction) +
		`, ` + colNombre + ` ASC, ` + colCURP + ` ASC, ` + colPeriodo + ` DESC`
}
