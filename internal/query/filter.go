package query

import (
	"fmt"
	"strings"

	"numerica-backend/internal/utils"
)

// FilterCriteria holds the raw filter parameters of one request. Blank
// fields mean "not filtered". Built once per request, read-only after.
type FilterCriteria struct {
	Search    string
	Sucursal  string
	Puesto    string
	Status    string
	Period    string
	Categoria string
}

// Operator enumerates the pushable predicate shapes the renderer knows.
type Operator int

const (
	// OpContains is a case-insensitive substring match, OR'd over one or
	// more columns sharing a single bound parameter.
	OpContains Operator = iota
	// OpEquals is an exact match on one column.
	OpEquals
	// OpDateEquals compares the date part of a timestamp column.
	OpDateEquals
	// OpRange is a half-open [start, end) comparison on one column.
	OpRange
)

// Predicate is one parameterized condition. Values travel in Args and are
// bound as query parameters; they never appear in SQL text.
type Predicate struct {
	Columns []string
	Op      Operator
	Args    []any
}

// FilterSpec separates pushable predicates from the derived category
// filter, which cannot be translated to a column predicate and forces the
// executor onto the fetch-then-classify path.
type FilterSpec struct {
	Predicates []Predicate
	Category   string
}

// HasCategory reports whether the non-pushable category filter is active.
func (s FilterSpec) HasCategory() bool { return s.Category != "" }

// statusCode maps dashboard status labels to the stored single-letter
// codes. Unknown labels pass through unchanged.
func statusCode(label string) string {
	switch label {
	case "Activo":
		return "A"
	case "Baja":
		return "B"
	case "Finiquito":
		return "F"
	}
	return label
}

// BuildFilterSpec translates request criteria into predicates. Blank values
// are omitted entirely, never turned into IS NULL or empty-string matches.
func BuildFilterSpec(c FilterCriteria) FilterSpec {
	spec := FilterSpec{}

	if term := utils.NormalizeSpace(strings.ToLower(c.Search)); term != "" {
		spec.Predicates = append(spec.Predicates, Predicate{
			Columns: []string{colNombre, colCURP},
			Op:      OpContains,
			Args:    []any{"%" + term + "%"},
		})
	}

	if v := utils.TrimOrEmpty(c.Sucursal); v != "" {
		spec.Predicates = append(spec.Predicates, Predicate{
			Columns: []string{colSucursal},
			Op:      OpEquals,
			Args:    []any{v},
		})
	}

	if v := utils.TrimOrEmpty(c.Puesto); v != "" {
		spec.Predicates = append(spec.Predicates, Predicate{
			Columns: []string{colPuesto},
			Op:      OpEquals,
			Args:    []any{v},
		})
	}

	if v := utils.TrimOrEmpty(c.Status); v != "" {
		spec.Predicates = append(spec.Predicates, Predicate{
			Columns: []string{colStatus},
			Op:      OpEquals,
			Args:    []any{statusCode(v)},
		})
	}

	if tok := NormalizePeriod(c.Period); tok.Kind != PeriodInvalid {
		spec.Predicates = append(spec.Predicates, periodPredicate(tok))
	}

	if v := utils.TrimOrEmpty(c.Categoria); v != "" {
		spec.Category = v
	}

	return spec
}

func periodPredicate(tok PeriodToken) Predicate {
	switch tok.Kind {
	case PeriodMonthRange:
		return Predicate{
			Columns: []string{colPeriodo},
			Op:      OpRange,
			Args:    []any{tok.Start, tok.End},
		}
	case PeriodExactDate:
		return Predicate{
			Columns: []string{colPeriodo},
			Op:      OpDateEquals,
			Args:    []any{tok.Raw},
		}
	default:
		return Predicate{
			Columns: []string{colPeriodo},
			Op:      OpEquals,
			Args:    []any{tok.Raw},
		}
	}
}

// Render walks the predicates and produces " AND ..." SQL starting at
// placeholder $startIndex, plus the bound args in placeholder order. An
// OpContains predicate binds its single parameter once even when OR'd over
// several columns.
func (s FilterSpec) Render(startIndex int) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(s.Predicates)*2)
	n := startIndex

	for _, p := range s.Predicates {
		switch p.Op {
		case OpContains:
			parts := make([]string, len(p.Columns))
			for i, col := range p.Columns {
				parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
			}
			sb.WriteString(" AND (" + strings.Join(parts, " OR ") + ")")
			args = append(args, p.Args[0])
			n++
		case OpEquals:
			sb.WriteString(fmt.Sprintf(" AND %s = $%d", p.Columns[0], n))
			args = append(args, p.Args[0])
			n++
		case OpDateEquals:
			sb.WriteString(fmt.Sprintf(" AND DATE(%s) = $%d", p.Columns[0], n))
			args = append(args, p.Args[0])
			n++
		case OpRange:
			sb.WriteString(fmt.Sprintf(" AND %s >= $%d AND %s < $%d", p.Columns[0], n, p.Columns[0], n+1))
			args = append(args, p.Args[0], p.Args[1])
			n += 2
		}
	}

	return sb.String(), args
}
